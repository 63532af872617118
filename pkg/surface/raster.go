package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// circleStep is the target arc length, in pixels, of one polygon edge when
// approximating a circle
const circleStep = 2.0

// Raster is a software Surface backed by an *image.RGBA. It is used where no
// window is available, e.g. for snapshots.
type Raster struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewRaster creates a transparent raster surface of the given size
func NewRaster(width, height int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Bounds() Bounds {
	b := r.img.Bounds()
	return Bounds{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	r.fill([][]Point{{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}}, c)
}

func (r *Raster) FillCircle(cx, cy, rad float64, c color.Color) {
	r.fill([][]Point{circlePoints(cx, cy, rad)}, c)
}

func (r *Raster) FillPath(p *Path, c color.Color) {
	polys := make([][]Point, 0, len(p.Subpaths()))
	for _, sp := range p.Subpaths() {
		polys = append(polys, sp.Points)
	}
	r.fill(polys, c)
}

func (r *Raster) StrokePath(p *Path, width float64, c color.Color) {
	var polys [][]Point
	for _, seg := range p.Segments() {
		if q := segmentQuad(seg[0], seg[1], width); q != nil {
			polys = append(polys, q)
		}
	}
	r.fill(polys, c)
}

// FillVerticalGradient blends the two stops in RGB space row by row
func (r *Raster) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	if h <= 0 || w <= 0 {
		return
	}
	c1, _ := colorful.MakeColor(top)
	c2, _ := colorful.MakeColor(bottom)
	_, _, _, a1 := top.RGBA()
	_, _, _, a2 := bottom.RGBA()

	area := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h))).Intersect(r.img.Bounds())
	for row := area.Min.Y; row < area.Max.Y; row++ {
		t := (float64(row) + 0.5 - y) / h
		t = math.Max(0, math.Min(1, t))
		cr, cg, cb := c1.BlendRgb(c2, t).Clamped().RGB255()
		alpha := uint8((float64(a1)*(1-t) + float64(a2)*t) / 257)
		line := image.Rect(area.Min.X, row, area.Max.X, row+1)
		draw.Draw(r.img, line, image.NewUniform(color.NRGBA{cr, cg, cb, alpha}), image.Point{}, draw.Over)
	}
}

func (r *Raster) fill(polys [][]Point, c color.Color) {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	r.ras.DrawOp = draw.Over

	drawn := false
	for _, poly := range polys {
		pts := clipPolygon(poly, float64(b.Dx()), float64(b.Dy()))
		if len(pts) < 3 {
			continue
		}
		r.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, pt := range pts[1:] {
			r.ras.LineTo(float32(pt.X), float32(pt.Y))
		}
		r.ras.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	r.ras.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

func circlePoints(cx, cy, rad float64) []Point {
	n := int(math.Ceil(2 * math.Pi * rad / circleStep))
	if n < 12 {
		n = 12
	}
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{cx + math.Cos(a)*rad, cy + math.Sin(a)*rad}
	}
	return pts
}

// segmentQuad returns the rectangle covering a stroked segment, or nil for a
// zero-length segment
func segmentQuad(a, b Point, width float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// clipPolygon clips poly to the rectangle [0,w]x[0,h] (Sutherland-Hodgman)
func clipPolygon(poly []Point, w, h float64) []Point {
	edges := []struct {
		inside    func(Point) bool
		intersect func(a, b Point) Point
	}{
		{func(p Point) bool { return p.X >= 0 }, func(a, b Point) Point { return atX(a, b, 0) }},
		{func(p Point) bool { return p.X <= w }, func(a, b Point) Point { return atX(a, b, w) }},
		{func(p Point) bool { return p.Y >= 0 }, func(a, b Point) Point { return atY(a, b, 0) }},
		{func(p Point) bool { return p.Y <= h }, func(a, b Point) Point { return atY(a, b, h) }},
	}

	out := poly
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.intersect(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{x, a.Y + t*(b.Y-a.Y)}
}

func atY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{a.X + t*(b.X-a.X), y}
}
