package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds every colour used by the scene
type Palette struct {
	SkyTop    color.Color
	SkyBottom color.Color
	Sun       color.Color
	Cloud     color.Color
	Mountain  color.Color
	Road      color.Color
	Marking   color.Color
	Ground    color.Color
	CarBody   color.Color
	CarWindow color.Color
	Wheel     color.Color
	Person    color.Color
}

// Hex is the palette expressed as "#rrggbb" strings, as found in config files
type Hex struct {
	SkyTop    string `yaml:"sky_top"`
	SkyBottom string `yaml:"sky_bottom"`
	Sun       string `yaml:"sun"`
	Cloud     string `yaml:"cloud"`
	Mountain  string `yaml:"mountain"`
	Road      string `yaml:"road"`
	Marking   string `yaml:"marking"`
	Ground    string `yaml:"ground"`
	CarBody   string `yaml:"car_body"`
	CarWindow string `yaml:"car_window"`
	Wheel     string `yaml:"wheel"`
	Person    string `yaml:"person"`
}

// DefaultHex is the sunrise palette
var DefaultHex = Hex{
	SkyTop:    "#ff9f43",
	SkyBottom: "#c672d3",
	Sun:       "#ffd700",
	Cloud:     "#ffffff",
	Mountain:  "#8b4513",
	Road:      "#4b4b4b",
	Marking:   "#ffffff",
	Ground:    "#009933",
	CarBody:   "#0000ff",
	CarWindow: "#808080",
	Wheel:     "#000000",
	Person:    "#000000",
}

// Default returns the parsed DefaultHex palette
func Default() Palette {
	p, err := DefaultHex.Parse()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse converts every hex string. Empty entries fall back to DefaultHex.
func (h Hex) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		val  string
		def  string
		dst  *color.Color
	}{
		{"sky_top", h.SkyTop, DefaultHex.SkyTop, &p.SkyTop},
		{"sky_bottom", h.SkyBottom, DefaultHex.SkyBottom, &p.SkyBottom},
		{"sun", h.Sun, DefaultHex.Sun, &p.Sun},
		{"cloud", h.Cloud, DefaultHex.Cloud, &p.Cloud},
		{"mountain", h.Mountain, DefaultHex.Mountain, &p.Mountain},
		{"road", h.Road, DefaultHex.Road, &p.Road},
		{"marking", h.Marking, DefaultHex.Marking, &p.Marking},
		{"ground", h.Ground, DefaultHex.Ground, &p.Ground},
		{"car_body", h.CarBody, DefaultHex.CarBody, &p.CarBody},
		{"car_window", h.CarWindow, DefaultHex.CarWindow, &p.CarWindow},
		{"wheel", h.Wheel, DefaultHex.Wheel, &p.Wheel},
		{"person", h.Person, DefaultHex.Person, &p.Person},
	}

	for _, f := range fields {
		val := f.val
		if val == "" {
			val = f.def
		}
		c, err := ParseColor(val)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseColor parses a "#rrggbb" string into an opaque colour
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
