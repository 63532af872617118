package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/golangdaddy/roadside/internal/config"
	"github.com/golangdaddy/roadside/internal/logging"
	"github.com/golangdaddy/roadside/pkg/game"
	"github.com/golangdaddy/roadside/pkg/scene"
	"github.com/golangdaddy/roadside/pkg/sky"
	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/golangdaddy/roadside/pkg/ui"
	"github.com/rs/zerolog"
)

// watchSun wraps frame to log the moment the sun parks
func watchSun(a *scene.Animator, log zerolog.Logger, frame game.FrameFunc) game.FrameFunc {
	parked := a.Stats().SunState == sky.Parked
	return func(s surface.Surface) {
		frame(s)
		if parked {
			return
		}
		if st := a.Stats(); st.SunState == sky.Parked {
			parked = true
			log.Info().Uint64("frame", st.Frame).Float64("sun_y", st.SunY).Msg("sun parked")
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are embedded)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot := logging.New(os.Stderr, "info")
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logging.New(os.Stderr, cfg.Log.Level)
	if *configPath != "" {
		log.Info().Str("path", *configPath).Msg("config loaded")
	}

	opts, err := cfg.SceneOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid scene options")
	}
	animator := scene.New(cfg.Bounds(), opts)

	var overlay game.Overlay
	if cfg.Overlay.Enabled {
		overlay = ui.NewOverlay(animator.Stats)
	}

	host := game.NewGame(game.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Scale:     cfg.Window.Scale,
		TPS:       cfg.Loop.TPS,
		MaxFrames: cfg.Loop.MaxFrames,
		Overlay:   overlay,
		Logger:    log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx, watchSun(animator, log, animator.Frame)); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
