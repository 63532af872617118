package surface

import (
	"image/color"
)

// OpKind identifies a recorded drawing call
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillCircle
	OpFillPath
	OpStrokePath
	OpFillGradient
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill-rect"
	case OpFillCircle:
		return "fill-circle"
	case OpFillPath:
		return "fill-path"
	case OpStrokePath:
		return "stroke-path"
	case OpFillGradient:
		return "fill-gradient"
	}
	return "unknown"
}

// Op is one recorded drawing call. Args holds the numeric arguments in call
// order; for paths it holds the flattened points.
type Op struct {
	Kind   OpKind
	Group  string
	Args   []float64
	Color  color.Color
	Color2 color.Color
	Path   *Path
}

// Grouper is implemented by surfaces that want to know which scene layer
// issues the following calls
type Grouper interface {
	BeginGroup(name string)
}

// BeginGroup labels the following calls on s with name when s supports it
func BeginGroup(s Surface, name string) {
	if g, ok := s.(Grouper); ok {
		g.BeginGroup(name)
	}
}

// Recorder is a Surface that draws nothing and keeps a log of calls
type Recorder struct {
	bounds Bounds
	group  string
	Ops    []Op
}

// NewRecorder creates a recorder with the given bounds
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{bounds: Bounds{Width: width, Height: height}}
}

func (r *Recorder) Bounds() Bounds { return r.bounds }

func (r *Recorder) BeginGroup(name string) { r.group = name }

func (r *Recorder) Clear() {
	r.record(Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.record(Op{Kind: OpFillRect, Args: []float64{x, y, w, h}, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.record(Op{Kind: OpFillCircle, Args: []float64{cx, cy, rad}, Color: c})
}

func (r *Recorder) FillPath(p *Path, c color.Color) {
	r.record(Op{Kind: OpFillPath, Args: flatten(p), Color: c, Path: p})
}

func (r *Recorder) StrokePath(p *Path, width float64, c color.Color) {
	args := append([]float64{width}, flatten(p)...)
	r.record(Op{Kind: OpStrokePath, Args: args, Color: c, Path: p})
}

func (r *Recorder) FillVerticalGradient(x, y, w, h float64, top, bottom color.Color) {
	r.record(Op{Kind: OpFillGradient, Args: []float64{x, y, w, h}, Color: top, Color2: bottom})
}

// Reset drops every recorded call
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.group = ""
}

// Groups returns the distinct group names in the order they first appear
func (r *Recorder) Groups() []string {
	var names []string
	seen := make(map[string]bool)
	for _, op := range r.Ops {
		if seen[op.Group] {
			continue
		}
		seen[op.Group] = true
		names = append(names, op.Group)
	}
	return names
}

// InGroup returns the calls recorded under name
func (r *Recorder) InGroup(name string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Group == name {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) record(op Op) {
	op.Group = r.group
	r.Ops = append(r.Ops, op)
}

func flatten(p *Path) []float64 {
	var out []float64
	for _, sp := range p.Subpaths() {
		for _, pt := range sp.Points {
			out = append(out, pt.X, pt.Y)
		}
	}
	return out
}
