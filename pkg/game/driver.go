package game

import (
	"context"
	"time"

	"github.com/golangdaddy/roadside/pkg/surface"
	"github.com/rs/zerolog"
)

// Driver is a Scheduler for targets without a display. It runs frames on
// the calling goroutine, one per Interval.
type Driver struct {
	Target    surface.Surface
	Interval  time.Duration // 0 runs frames back to back
	MaxFrames uint64        // 0 runs until ctx is cancelled
	Logger    zerolog.Logger

	// OnFrame, if set, is called after every frame with the frame count
	OnFrame func(n uint64)

	frames uint64
}

// Run calls frame until ctx is cancelled or MaxFrames is reached
func (d *Driver) Run(ctx context.Context, frame FrameFunc) error {
	var tick <-chan time.Time
	if d.Interval > 0 {
		ticker := time.NewTicker(d.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	d.Logger.Debug().
		Dur("interval", d.Interval).
		Uint64("max_frames", d.MaxFrames).
		Msg("driver started")

	for {
		if limitReached(d.frames, d.MaxFrames) {
			d.Logger.Debug().Uint64("frames", d.frames).Msg("frame limit reached")
			return nil
		}
		if ctx.Err() != nil {
			d.Logger.Debug().Uint64("frames", d.frames).Msg("driver cancelled")
			return nil
		}

		frame(d.Target)
		d.frames++
		if d.OnFrame != nil {
			d.OnFrame(d.frames)
		}

		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
		case <-tick:
		}
	}
}

// Frames returns how many frames have run
func (d *Driver) Frames() uint64 {
	return d.frames
}
