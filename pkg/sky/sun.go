package sky

import (
	"image/color"
	"math"

	"github.com/golangdaddy/roadside/pkg/surface"
)

// SunState tells whether the sun is still climbing
type SunState int

const (
	Rising SunState = iota
	Parked
)

func (s SunState) String() string {
	if s == Parked {
		return "PARKED"
	}
	return "RISING"
}

// SunConfig holds the fixed parameters of the sun
type SunConfig struct {
	Radius        float64
	Speed         float64 // climb per frame
	TopLimit      float64 // the sun parks with its centre at TopLimit+Radius
	Flare         float64 // flare length while low in the sky
	FlareExpanded float64 // flare length at the top
	Flares        int     // number of flares around the disc
}

// DefaultSunConfig is a slow sunrise with 24 flares
var DefaultSunConfig = SunConfig{
	Radius:        50,
	Speed:         0.5,
	TopLimit:      50,
	Flare:         20,
	FlareExpanded: 50,
	Flares:        24,
}

// Sun rises from the bottom edge and parks near the top
type Sun struct {
	X, Y float64
	SunConfig

	color color.Color
}

// NewSun places the sun centred horizontally on the bottom edge of b
func NewSun(b surface.Bounds, cfg SunConfig, c color.Color) *Sun {
	return &Sun{
		X:         b.Width / 2,
		Y:         b.Height,
		SunConfig: cfg,
		color:     c,
	}
}

// threshold is the y at which the sun stops climbing
func (s *Sun) threshold() float64 {
	return s.TopLimit + s.Radius
}

// FlareLength picks the flare length for the current height
func (s *Sun) FlareLength() float64 {
	if s.Y <= s.threshold() {
		return s.FlareExpanded
	}
	return s.Flare
}

// State reports whether the sun has reached the top. Once Parked it never
// goes back since Y only decreases.
func (s *Sun) State() SunState {
	if s.Y > s.threshold() {
		return Rising
	}
	return Parked
}

// Advance moves the sun up one step unless it has parked. It compares
// against the threshold itself and does not consult State or FlareLength.
func (s *Sun) Advance() {
	if s.Y > s.threshold() {
		s.Y -= s.Speed
	}
}

// Draw paints the disc and its flares
func (s *Sun) Draw(dst surface.Surface) {
	dst.FillCircle(s.X, s.Y, s.Radius, s.color)

	flare := s.FlareLength()
	for _, a := range s.FlareAngles() {
		cos, sin := math.Cos(a), math.Sin(a)
		dst.StrokePath(surface.Line(
			s.X+cos*s.Radius, s.Y+sin*s.Radius,
			s.X+cos*(s.Radius+flare), s.Y+sin*(s.Radius+flare),
		), 1, s.color)
	}
}

// FlareAngles returns the evenly spaced flare directions in radians
func (s *Sun) FlareAngles() []float64 {
	if s.Flares <= 0 {
		return nil
	}
	angles := make([]float64, s.Flares)
	step := 2 * math.Pi / float64(s.Flares)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}
