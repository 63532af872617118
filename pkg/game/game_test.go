package game

import (
	"context"
	"testing"
	"time"

	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Scheduler   = (*Game)(nil)
	_ Scheduler   = (*Driver)(nil)
	_ ebiten.Game = (*Game)(nil)
)

func countingFrame(n *int) FrameFunc {
	return func(s surface.Surface) {
		s.Clear()
		*n++
	}
}

func TestDriver_StopsAtMaxFrames(t *testing.T) {
	rec := surface.NewRecorder(10, 10)
	calls := 0
	var seen []uint64
	d := &Driver{
		Target:    rec,
		MaxFrames: 5,
		Logger:    zerolog.Nop(),
		OnFrame:   func(n uint64) { seen = append(seen, n) },
	}

	require.NoError(t, d.Run(context.Background(), countingFrame(&calls)))

	assert.Equal(t, 5, calls)
	assert.Equal(t, uint64(5), d.Frames())
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, seen)
	assert.Len(t, rec.Ops, 5)
}

func TestDriver_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	d := &Driver{
		Target:   surface.NewRecorder(10, 10),
		Interval: time.Millisecond,
		Logger:   zerolog.Nop(),
		OnFrame: func(n uint64) {
			if n == 3 {
				cancel()
			}
		},
	}

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, countingFrame(&calls)) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop after cancel")
	}
	assert.Equal(t, 3, calls)
}

func TestDriver_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	d := &Driver{Target: surface.NewRecorder(10, 10), Logger: zerolog.Nop()}
	require.NoError(t, d.Run(ctx, countingFrame(&calls)))
	assert.Zero(t, calls)
}

func TestGame_UpdateTerminatesAtFrameLimit(t *testing.T) {
	g := NewGame(Options{Width: 800, Height: 600, MaxFrames: 2, Logger: zerolog.Nop()})
	calls := 0
	g.frame = countingFrame(&calls)
	rec := surface.NewRecorder(800, 600)

	require.NoError(t, g.Update())
	g.tick(rec)
	require.NoError(t, g.Update())
	g.tick(rec)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)

	// Extra draws past the limit are ignored
	g.tick(rec)
	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(2), g.Frames())
}

func TestGame_UpdateTerminatesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGame(Options{Width: 800, Height: 600, Logger: zerolog.Nop()})
	g.ctx = ctx

	require.NoError(t, g.Update())
	cancel()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestGame_Layout(t *testing.T) {
	g := NewGame(Options{Width: 800, Height: 600, Scale: 2})

	w, h := g.Layout(1600, 1200)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 2.0, g.opts.Scale)
	assert.Equal(t, 1.0, NewGame(Options{}).opts.Scale)
}

func TestGame_TickWithoutFrame(t *testing.T) {
	g := NewGame(Options{Width: 10, Height: 10})
	assert.NotPanics(t, func() { g.tick(surface.NewRecorder(10, 10)) })
	assert.Zero(t, g.Frames())
}
