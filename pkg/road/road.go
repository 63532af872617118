package road

import (
	"math"

	"github.com/golangdaddy/roadside/pkg/palette"
	"github.com/golangdaddy/roadside/pkg/surface"
)

// Road geometry, in surface units measured up from the bottom edge unless
// noted otherwise
const (
	surfaceTop    = 80.0 // top edge of the asphalt
	surfaceHeight = 70.0
	markingTop    = 45.0 // top edge of the centre markings
	markingLength = 40.0
	markingWidth  = 5.0
	markingPitch  = 60.0 // distance between the starts of two markings

	upperLane = 80.0 // y of cars travelling right
	lowerLane = 50.0 // y of cars travelling left
)

// Road is a two-lane road running across the bottom of the scene
type Road struct {
	Width  float64
	Height float64

	palette palette.Palette
}

// NewRoad creates a road spanning the full width of b
func NewRoad(b surface.Bounds, p palette.Palette) *Road {
	return &Road{
		Width:   b.Width,
		Height:  b.Height,
		palette: p,
	}
}

// Draw renders the asphalt and the dashed centre markings
func (r *Road) Draw(s surface.Surface) {
	s.FillRect(0, r.Height-surfaceTop, r.Width, surfaceHeight, r.palette.Road)

	for i := 0; i < r.Markings(); i++ {
		x := float64(i) * markingPitch
		s.FillRect(x, r.Height-markingTop, markingLength, markingWidth, r.palette.Marking)
	}
}

// Markings returns how many centre markings Draw paints
func (r *Road) Markings() int {
	if r.Width <= 0 {
		return 0
	}
	return int(math.Ceil(r.Width / markingPitch))
}

// UpperLaneY is the y of the body top of a car driving to the right
func (r *Road) UpperLaneY() float64 {
	return r.Height - upperLane
}

// LowerLaneY is the y of the body top of a car driving to the left
func (r *Road) LowerLaneY() float64 {
	return r.Height - lowerLane
}

// LaneFor returns the lane a car with the given speed drives in
func (r *Road) LaneFor(speed float64) float64 {
	if speed < 0 {
		return r.LowerLaneY()
	}
	return r.UpperLaneY()
}
