package game

import (
	"context"

	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Overlay is drawn on top of every frame
type Overlay interface {
	Draw(screen *ebiten.Image)
}

// Options configures the window host
type Options struct {
	Width     int
	Height    int
	Title     string
	Scale     float64 // window size relative to the logical screen
	TPS       int
	MaxFrames uint64 // 0 runs until the window is closed
	Overlay   Overlay
	Logger    zerolog.Logger
}

// Game implements ebiten.Game and schedules one frame per Draw, i.e. per
// display refresh
type Game struct {
	opts   Options
	ctx    context.Context
	frame  FrameFunc
	frames uint64
}

// NewGame creates a window host
func NewGame(opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return &Game{
		opts: opts,
		ctx:  context.Background(),
	}
}

// Run opens the window and blocks until it is closed, ctx is cancelled or
// MaxFrames frames have been drawn
func (g *Game) Run(ctx context.Context, frame FrameFunc) error {
	g.ctx = ctx
	g.frame = frame

	ebiten.SetWindowSize(int(float64(g.opts.Width)*g.opts.Scale), int(float64(g.opts.Height)*g.opts.Scale))
	ebiten.SetWindowTitle(g.opts.Title)
	if g.opts.TPS > 0 {
		ebiten.SetTPS(g.opts.TPS)
	}

	g.opts.Logger.Info().
		Int("width", g.opts.Width).
		Int("height", g.opts.Height).
		Str("title", g.opts.Title).
		Msg("opening window")

	if err := ebiten.RunGame(g); err != nil {
		return err
	}

	g.opts.Logger.Info().Uint64("frames", g.frames).Msg("window closed")
	return nil
}

// Update proceeds the game state.
// The scene has no input, so Update only decides whether to stop.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if limitReached(g.frames, g.opts.MaxFrames) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders one frame of the animation and the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	g.tick(surface.NewEbiten(screen))
	if g.opts.Overlay != nil {
		g.opts.Overlay.Draw(screen)
	}
}

// tick runs a single frame unless the frame cap is used up
func (g *Game) tick(s surface.Surface) {
	if g.frame == nil || limitReached(g.frames, g.opts.MaxFrames) {
		return
	}
	g.frame(s)
	g.frames++
}

// Layout returns the logical screen size. It stays fixed so the scene is
// scaled with the window instead of being laid out again.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Width, g.opts.Height
}

// Frames returns how many frames have been drawn
func (g *Game) Frames() uint64 {
	return g.frames
}
