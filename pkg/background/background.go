package background

import (
	"github.com/golangdaddy/roadside/pkg/palette"
	"github.com/golangdaddy/roadside/pkg/surface"
)

// Heights of the fixed bands, measured up from the bottom edge
const (
	horizonHeight = 80.0
	groundHeight  = 10.0
)

// mountainPeaks are the silhouette vertices as (fraction of width, height
// above the horizon)
var mountainPeaks = [...][2]float64{
	{0, 0},
	{1.0 / 6, 70},
	{2.0 / 6, 0},
	{3.0 / 6, 50},
	{4.0 / 6, 10},
	{5.0 / 6, 60},
	{1, 0},
}

// Generator paints the static layers of the scene
type Generator struct {
	Width  float64
	Height float64

	palette palette.Palette
}

// NewGenerator creates a new background generator
func NewGenerator(b surface.Bounds, p palette.Palette) *Generator {
	return &Generator{
		Width:   b.Width,
		Height:  b.Height,
		palette: p,
	}
}

// DrawSky fills the whole surface with the sky gradient
func (g *Generator) DrawSky(s surface.Surface) {
	s.FillVerticalGradient(0, 0, g.Width, g.Height, g.palette.SkyTop, g.palette.SkyBottom)
}

// MountainOutline returns the closed mountain silhouette
func (g *Generator) MountainOutline() []surface.Point {
	base := g.HorizonY()
	pts := make([]surface.Point, len(mountainPeaks))
	for i, peak := range mountainPeaks {
		pts[i] = surface.Point{X: peak[0] * g.Width, Y: base - peak[1]}
	}
	return pts
}

// DrawMountains fills the mountain silhouette sitting on the horizon
func (g *Generator) DrawMountains(s surface.Surface) {
	s.FillPath(surface.Polygon(g.MountainOutline()...), g.palette.Mountain)
}

// DrawGround fills the grass strip along the bottom edge
func (g *Generator) DrawGround(s surface.Surface) {
	s.FillRect(0, g.Height-groundHeight, g.Width, groundHeight, g.palette.Ground)
}

// HorizonY is where the mountains meet the road
func (g *Generator) HorizonY() float64 {
	return g.Height - horizonHeight
}
