package surface

import "image/color"

// Bounds is the visible size of a drawing surface in surface units
type Bounds struct {
	Width  float64
	Height float64
}

// Surface is a 2D drawing context. Every call paints immediately and
// cannot fail.
type Surface interface {
	// Bounds returns the size of the surface
	Bounds() Bounds
	// Clear resets every pixel to transparent
	Clear()
	// FillRect fills an axis-aligned rectangle with its top-left corner at (x, y)
	FillRect(x, y, w, h float64, c color.Color)
	// FillCircle fills a full circle centred on (cx, cy)
	FillCircle(cx, cy, r float64, c color.Color)
	// FillPath fills every subpath of p as a closed polygon
	FillPath(p *Path, c color.Color)
	// StrokePath draws every segment of p with the given line width
	StrokePath(p *Path, width float64, c color.Color)
	// FillVerticalGradient fills a rectangle blending from top to bottom
	FillVerticalGradient(x, y, w, h float64, top, bottom color.Color)
}

// Point is a position on the surface
type Point struct {
	X, Y float64
}

// Path is a sequence of subpaths built with MoveTo, LineTo and Close,
// like a canvas path.
type Path struct {
	subpaths []Subpath
}

// Subpath is a connected run of points
type Subpath struct {
	Points []Point
	Closed bool
}

// MoveTo starts a new subpath at (x, y)
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{Points: []Point{{x, y}}})
}

// LineTo extends the current subpath to (x, y). A LineTo with no current
// subpath starts one, as a canvas does.
func (p *Path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 || p.subpaths[len(p.subpaths)-1].Closed {
		p.MoveTo(x, y)
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	last.Points = append(last.Points, Point{x, y})
}

// Close closes the current subpath back to its first point
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	p.subpaths[len(p.subpaths)-1].Closed = true
}

// Subpaths returns the subpaths of p
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Segments returns every line segment of p, including the closing segment
// of closed subpaths
func (p *Path) Segments() [][2]Point {
	var segs [][2]Point
	for _, sp := range p.subpaths {
		for i := 1; i < len(sp.Points); i++ {
			segs = append(segs, [2]Point{sp.Points[i-1], sp.Points[i]})
		}
		if sp.Closed && len(sp.Points) > 2 {
			segs = append(segs, [2]Point{sp.Points[len(sp.Points)-1], sp.Points[0]})
		}
	}
	return segs
}

// Polygon builds a closed path through pts
func Polygon(pts ...Point) *Path {
	p := &Path{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// Line builds an open path with a single segment
func Line(x0, y0, x1, y1 float64) *Path {
	p := &Path{}
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}
