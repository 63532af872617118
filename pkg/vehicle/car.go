package vehicle

import (
	"image/color"

	"github.com/golangdaddy/roadside/pkg/surface"
)

// Car dimensions, relative to the top-left corner of the body
const (
	bodyWidth   = 50.0
	bodyHeight  = 20.0
	roofHeight  = 10.0
	wheelRadius = 5.0

	// CarMargin is how far past the left edge a car re-enters
	CarMargin = bodyWidth
)

// Colors are the paints used on a car
type Colors struct {
	Body   color.Color
	Window color.Color
	Wheel  color.Color
}

// Car is a side-on car driving horizontally
type Car struct {
	X, Y  float64 // top-left of the body
	Speed float64

	lanes  Lanes
	colors Colors
}

// NewCar creates a car at (x, y)
func NewCar(x, y, speed float64, lanes Lanes, colors Colors) *Car {
	return &Car{
		X:      x,
		Y:      y,
		Speed:  speed,
		lanes:  lanes,
		colors: colors,
	}
}

// DefaultCars returns one car heading right from the left edge in the
// upper lane and one heading left from the right edge in the lower lane
func DefaultCars(b surface.Bounds, lanes Lanes, colors Colors) []*Car {
	return []*Car{
		NewCar(0, lanes.LaneFor(2), 2, lanes, colors),
		NewCar(b.Width, lanes.LaneFor(-3), -3, lanes, colors),
	}
}

// Draw renders body, roof, window and wheels
func (c *Car) Draw(s surface.Surface) {
	// Body
	s.FillRect(c.X, c.Y, bodyWidth, bodyHeight, c.colors.Body)

	// Roof
	s.FillPath(surface.Polygon(
		surface.Point{X: c.X + 10, Y: c.Y},
		surface.Point{X: c.X + 15, Y: c.Y - roofHeight},
		surface.Point{X: c.X + 35, Y: c.Y - roofHeight},
		surface.Point{X: c.X + 40, Y: c.Y},
	), c.colors.Body)

	// Window
	s.FillRect(c.X+17, c.Y-8, 16, 8, c.colors.Window)

	// Wheels
	s.FillCircle(c.X+15, c.Y+bodyHeight, wheelRadius, c.colors.Wheel)
	s.FillCircle(c.X+35, c.Y+bodyHeight, wheelRadius, c.colors.Wheel)
}

// Advance drives the car and, once it has left the screen, brings it back
// on the opposite side in the lane for its direction
func (c *Car) Advance(width float64) {
	c.X += c.Speed

	switch {
	case c.Speed > 0 && c.X > width:
		c.X = -CarMargin
	case c.Speed < 0 && c.X < -CarMargin:
		c.X = width
	default:
		return
	}
	c.Y = c.lanes.LaneFor(c.Speed)
}
