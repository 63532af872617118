package surface

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_Segments(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want int
	}{
		{"single line", Line(0, 0, 10, 0), 1},
		{"closed triangle", Polygon(Point{0, 0}, Point{10, 0}, Point{0, 10}), 3},
		{"open polyline", func() *Path {
			p := &Path{}
			p.MoveTo(0, 0)
			p.LineTo(5, 5)
			p.LineTo(10, 0)
			return p
		}(), 2},
		{"two subpaths sharing a start", func() *Path {
			p := &Path{}
			p.MoveTo(0, 15)
			p.LineTo(-5, 25)
			p.MoveTo(0, 15)
			p.LineTo(5, 25)
			return p
		}(), 2},
		{"empty", &Path{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.path.Segments(), tt.want)
		})
	}
}

func TestPath_LineToWithoutMoveTo(t *testing.T) {
	p := &Path{}
	p.LineTo(3, 4)
	p.LineTo(5, 6)

	require.Len(t, p.Subpaths(), 1)
	assert.Equal(t, []Point{{3, 4}, {5, 6}}, p.Subpaths()[0].Points)
}

func TestRecorder_GroupsCalls(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Clear()
	BeginGroup(r, "sky")
	r.FillVerticalGradient(0, 0, 100, 50, color.White, color.Black)
	BeginGroup(r, "road")
	r.FillRect(0, 10, 100, 5, color.Black)
	r.FillRect(0, 12, 10, 1, color.White)

	assert.Equal(t, Bounds{Width: 100, Height: 50}, r.Bounds())
	assert.Equal(t, []string{"", "sky", "road"}, r.Groups())
	require.Len(t, r.InGroup("road"), 2)
	assert.Equal(t, []float64{0, 10, 100, 5}, r.InGroup("road")[0].Args)
	assert.Equal(t, OpFillGradient, r.InGroup("sky")[0].Kind)

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestBeginGroup_IgnoredBySurfacesWithoutGroups(t *testing.T) {
	r := NewRaster(4, 4)
	assert.NotPanics(t, func() { BeginGroup(r, "sky") })
}

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want int
	}{
		{"triangle", []Point{{0, 0}, {10, 0}, {0, 10}}, 1},
		{"square clockwise", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, 2},
		{"square counter-clockwise", []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, 2},
		{"trapezoid", []Point{{10, 0}, {15, -10}, {35, -10}, {40, 0}}, 2},
		{"mountains", []Point{
			{0, 520}, {800.0 / 6, 450}, {2 * 800.0 / 6, 520}, {3 * 800.0 / 6, 470},
			{4 * 800.0 / 6, 510}, {5 * 800.0 / 6, 460}, {800, 520},
		}, 4},
		{"too few points", []Point{{0, 0}, {1, 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := Triangulate(tt.pts)
			require.Len(t, idx, tt.want*3)

			// The triangles must cover the polygon area exactly
			var area float64
			for i := 0; i < len(idx); i += 3 {
				area += math.Abs(cross(tt.pts[idx[i]], tt.pts[idx[i+1]], tt.pts[idx[i+2]])) / 2
			}
			assert.InDelta(t, math.Abs(signedArea(tt.pts)), area, 1e-6)
		})
	}
}
