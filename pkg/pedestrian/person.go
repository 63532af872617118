package pedestrian

import (
	"image/color"

	"github.com/golangdaddy/roadside/pkg/surface"
)

// Figure proportions, relative to the centre of the head
const (
	headRadius = 5.0
	torsoTop   = 5.0
	hipY       = 15.0
	footY      = 25.0
	stride     = 5.0 // horizontal distance from hip to each foot
	lineWidth  = 1.0

	// PersonMargin is how far past the left edge a person re-enters
	PersonMargin = 20.0
)

// Person is a stick figure walking along the verge
type Person struct {
	X, Y  float64 // centre of the head
	Speed float64

	color color.Color
}

// NewPerson creates a person with the head centred on (x, y)
func NewPerson(x, y, speed float64, c color.Color) *Person {
	return &Person{X: x, Y: y, Speed: speed, color: c}
}

// DefaultPeople returns two walkers heading in opposite directions
func DefaultPeople(b surface.Bounds, c color.Color) []*Person {
	return []*Person{
		NewPerson(50, b.Height-20, 1, c),
		NewPerson(b.Width-50, b.Height-40, -1.5, c),
	}
}

// Draw paints head, torso and legs
func (p *Person) Draw(s surface.Surface) {
	s.FillCircle(p.X, p.Y, headRadius, p.color)

	s.StrokePath(surface.Line(p.X, p.Y+torsoTop, p.X, p.Y+hipY), lineWidth, p.color)

	legs := &surface.Path{}
	legs.MoveTo(p.X, p.Y+hipY)
	legs.LineTo(p.X-stride, p.Y+footY)
	legs.MoveTo(p.X, p.Y+hipY)
	legs.LineTo(p.X+stride, p.Y+footY)
	s.StrokePath(legs, lineWidth, p.color)
}

// Advance walks the person and wraps them around the visible width
func (p *Person) Advance(width float64) {
	p.X += p.Speed
	if p.X > width {
		p.X = -PersonMargin
	}
	if p.X < -PersonMargin {
		p.X = width
	}
}
