package sky

import (
	"image/color"

	"github.com/golangdaddy/roadside/pkg/surface"
)

// CloudMargin is how far past the left edge a cloud is parked when it wraps
const CloudMargin = 200.0

// Blob is one circle of a cloud, relative to the cloud's anchor
type Blob struct {
	X, Y   float64
	Radius float64
}

// Cloud is a cluster of blobs drifting horizontally
type Cloud struct {
	X, Y  float64
	Speed float64
	Blobs []Blob

	color color.Color
}

// NewCloud creates a cloud anchored at (x, y)
func NewCloud(x, y, speed float64, blobs []Blob, c color.Color) *Cloud {
	return &Cloud{X: x, Y: y, Speed: speed, Blobs: blobs, color: c}
}

// DefaultClouds returns the two clouds of the default scene, one drifting
// in from each side
func DefaultClouds(b surface.Bounds, c color.Color) []*Cloud {
	return []*Cloud{
		NewCloud(0, 100, 1, []Blob{
			{X: 50, Y: 40, Radius: 40},
			{X: 100, Y: 50, Radius: 50},
			{X: 150, Y: 40, Radius: 45},
		}, c),
		NewCloud(b.Width, 150, -1.2, []Blob{
			{X: 30, Y: 30, Radius: 35},
			{X: 70, Y: 45, Radius: 45},
			{X: 120, Y: 35, Radius: 50},
		}, c),
	}
}

// Draw paints every blob
func (c *Cloud) Draw(dst surface.Surface) {
	for _, blob := range c.Blobs {
		dst.FillCircle(c.X+blob.X, c.Y+blob.Y, blob.Radius, c.color)
	}
}

// Advance drifts the cloud and wraps it around the visible width
func (c *Cloud) Advance(width float64) {
	c.X += c.Speed
	if c.X > width {
		c.X = -CloudMargin
	}
	if c.X < -CloudMargin {
		c.X = width
	}
}
