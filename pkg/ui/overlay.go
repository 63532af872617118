package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/roadside/pkg/scene"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Overlay prints animation stats in the top-left corner
type Overlay struct {
	stats func() scene.Stats
	face  text.Face
	scale float64
	color color.Color
}

// NewOverlay creates an overlay that reads its numbers from stats
func NewOverlay(stats func() scene.Stats) *Overlay {
	return &Overlay{
		stats: stats,
		face:  text.NewGoXFace(bitmapfont.Face),
		scale: 1.5,
		color: color.RGBA{255, 255, 255, 220},
	}
}

// Lines returns the text drawn by the overlay
func (o *Overlay) Lines() []string {
	st := o.stats()
	return []string{
		fmt.Sprintf("frame %d  tps %.0f", st.Frame, ebiten.ActualTPS()),
		fmt.Sprintf("sun %s y=%.1f", st.SunState, st.SunY),
		fmt.Sprintf("clouds %d  cars %d  people %d", st.Clouds, st.Cars, st.People),
	}
}

// Draw renders the overlay
func (o *Overlay) Draw(screen *ebiten.Image) {
	lineHeight := o.face.Metrics().HAscent + o.face.Metrics().HDescent
	for i, line := range o.Lines() {
		op := &text.DrawOptions{}
		op.GeoM.Scale(o.scale, o.scale)
		op.GeoM.Translate(8, 8+float64(i)*lineHeight*o.scale)
		op.ColorScale.ScaleWithColor(o.color)
		text.Draw(screen, line, o.face, op)
	}
}
