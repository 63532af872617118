// Command roadside-snapshot renders the animation without a window and
// writes the last frame as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/golangdaddy/roadside/internal/config"
	"github.com/golangdaddy/roadside/internal/logging"
	"github.com/golangdaddy/roadside/pkg/game"
	"github.com/golangdaddy/roadside/pkg/scene"
	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/rs/zerolog"
)

func writePNG(path string, r *surface.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return f.Close()
}

// applyOverrides replaces config values with the flags that were given.
// Zero values mean the flag was not set.
func applyOverrides(cfg *config.Config, frames uint64, out string) {
	if frames > 0 {
		cfg.Snapshot.Frames = frames
	}
	if out != "" {
		cfg.Snapshot.Out = out
	}
}

// run renders cfg.Snapshot.Frames frames and writes the last one to
// cfg.Snapshot.Out
func run(ctx context.Context, cfg *config.Config, realtime bool, log zerolog.Logger) (scene.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return scene.Stats{}, err
	}
	opts, err := cfg.SceneOptions()
	if err != nil {
		return scene.Stats{}, fmt.Errorf("invalid scene options: %w", err)
	}
	animator := scene.New(cfg.Bounds(), opts)
	raster := surface.NewRaster(cfg.Window.Width, cfg.Window.Height)

	driver := &game.Driver{
		Target:    raster,
		MaxFrames: cfg.Snapshot.Frames,
		Logger:    log,
	}
	if realtime {
		driver.Interval = cfg.FrameInterval()
	}

	if err := driver.Run(ctx, animator.Frame); err != nil {
		return scene.Stats{}, fmt.Errorf("render failed: %w", err)
	}
	if err := writePNG(cfg.Snapshot.Out, raster); err != nil {
		return scene.Stats{}, err
	}
	return animator.Stats(), nil
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are embedded)")
	frames := flag.Uint64("frames", 0, "frames to render (overrides snapshot.frames)")
	out := flag.String("out", "", "output PNG path (overrides snapshot.out)")
	realtime := flag.Bool("realtime", false, "pace frames at the configured tps")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logging.New(os.Stderr, cfg.Log.Level)
	applyOverrides(cfg, *frames, *out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := run(ctx, cfg, *realtime, log)
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot failed")
	}
	log.Info().
		Uint64("frames", st.Frame).
		Stringer("sun", st.SunState).
		Float64("sun_y", st.SunY).
		Str("out", cfg.Snapshot.Out).
		Msg("snapshot written")
}
