package vehicle

import (
	"image/color"
	"testing"

	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedLanes struct{ upper, lower float64 }

func (l fixedLanes) LaneFor(speed float64) float64 {
	if speed < 0 {
		return l.lower
	}
	return l.upper
}

// lanes of an 800x600 scene
var lanes = fixedLanes{upper: 520, lower: 550}

var colors = Colors{
	Body:   color.RGBA{0, 0, 255, 255},
	Window: color.RGBA{128, 128, 128, 255},
	Wheel:  color.RGBA{0, 0, 0, 255},
}

func TestCar_Advance(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		speed float64
		wantX float64
		wantY float64
	}{
		{"right bound wraps to upper lane", 810, 550, 2, -50, 520},
		{"right bound still on screen", 700, 520, 2, 702, 520},
		{"right bound at the edge", 798, 520, 2, 800, 520},
		{"left bound wraps to lower lane", -48, 520, -3, 800, 550},
		{"left bound inside margin", -40, 550, -3, -43, 550},
		{"left bound at the margin", -47, 550, -3, -50, 550},
		{"stopped car never wraps", 900, 520, 0, 900, 520},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCar(tt.x, tt.y, tt.speed, lanes, colors)
			c.Advance(800)
			assert.Equal(t, tt.wantX, c.X)
			assert.Equal(t, tt.wantY, c.Y)
		})
	}
}

func TestCar_StaysInBounds(t *testing.T) {
	b := surface.Bounds{Width: 800, Height: 600}
	for _, c := range DefaultCars(b, lanes, colors) {
		for i := 0; i < 5000; i++ {
			c.Advance(b.Width)
			require.GreaterOrEqual(t, c.X, -CarMargin)
			require.LessOrEqual(t, c.X, b.Width+CarMargin)
		}
	}
}

func TestCar_Draw(t *testing.T) {
	rec := surface.NewRecorder(800, 600)
	c := NewCar(100, 520, 2, lanes, colors)
	c.Draw(rec)

	require.Len(t, rec.Ops, 5)

	assert.Equal(t, surface.OpFillRect, rec.Ops[0].Kind)
	assert.Equal(t, []float64{100, 520, 50, 20}, rec.Ops[0].Args)

	assert.Equal(t, surface.OpFillPath, rec.Ops[1].Kind)
	assert.Equal(t, []float64{110, 520, 115, 510, 135, 510, 140, 520}, rec.Ops[1].Args)
	assert.True(t, rec.Ops[1].Path.Subpaths()[0].Closed)
	assert.Equal(t, colors.Body, rec.Ops[1].Color)

	assert.Equal(t, []float64{117, 512, 16, 8}, rec.Ops[2].Args)
	assert.Equal(t, colors.Window, rec.Ops[2].Color)

	assert.Equal(t, []float64{115, 540, 5}, rec.Ops[3].Args)
	assert.Equal(t, []float64{135, 540, 5}, rec.Ops[4].Args)
	assert.Equal(t, colors.Wheel, rec.Ops[4].Color)
}

func TestDefaultCars(t *testing.T) {
	cars := DefaultCars(surface.Bounds{Width: 800, Height: 600}, lanes, colors)

	require.Len(t, cars, 2)
	assert.Equal(t, 0.0, cars[0].X)
	assert.Equal(t, 520.0, cars[0].Y)
	assert.Equal(t, 2.0, cars[0].Speed)
	assert.Equal(t, 800.0, cars[1].X)
	assert.Equal(t, 550.0, cars[1].Y)
	assert.Equal(t, -3.0, cars[1].Speed)
}
