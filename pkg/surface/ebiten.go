package surface

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles. The centre pixel
// of a 3x3 image is used so that sampling never bleeds past the edge.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Ebiten draws on an Ebitengine image, normally the screen passed to Draw
type Ebiten struct {
	dst       *ebiten.Image
	antialias bool
}

// NewEbiten wraps dst
func NewEbiten(dst *ebiten.Image) *Ebiten {
	return &Ebiten{dst: dst, antialias: true}
}

func (e *Ebiten) Bounds() Bounds {
	b := e.dst.Bounds()
	return Bounds{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (e *Ebiten) Clear() {
	e.dst.Clear()
}

func (e *Ebiten) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(e.dst, float32(x), float32(y), float32(w), float32(h), c, e.antialias)
}

func (e *Ebiten) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(e.dst, float32(cx), float32(cy), float32(r), c, e.antialias)
}

// FillPath triangulates each subpath and draws the triangles in one batch
func (e *Ebiten) FillPath(p *Path, c color.Color) {
	var vs []ebiten.Vertex
	var is []uint16
	for _, sp := range p.Subpaths() {
		base := uint16(len(vs))
		for _, pt := range sp.Points {
			vs = append(vs, vertex(pt.X, pt.Y, c))
		}
		for _, i := range Triangulate(sp.Points) {
			is = append(is, base+i)
		}
	}
	if len(is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      e.antialias,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	e.dst.DrawTriangles(vs, is, white(), op)
}

func (e *Ebiten) StrokePath(p *Path, width float64, c color.Color) {
	for _, seg := range p.Segments() {
		a, b := seg[0], seg[1]
		vector.StrokeLine(e.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, e.antialias)
	}
}

// FillVerticalGradient relies on vertex colour interpolation between the
// top and bottom edges
func (e *Ebiten) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	vs := []ebiten.Vertex{
		vertex(x, y, top),
		vertex(x+w, y, top),
		vertex(x, y+h, bottom),
		vertex(x+w, y+h, bottom),
	}
	is := []uint16{0, 1, 2, 1, 2, 3}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	e.dst.DrawTriangles(vs, is, white(), op)
}

// vertex builds a vertex with premultiplied colour, as returned by RGBA
func vertex(x, y float64, c color.Color) ebiten.Vertex {
	r, g, b, a := c.RGBA()
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(r) / 0xffff,
		ColorG: float32(g) / 0xffff,
		ColorB: float32(b) / 0xffff,
		ColorA: float32(a) / 0xffff,
	}
}
