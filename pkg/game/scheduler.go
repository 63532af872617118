package game

import (
	"context"

	"github.com/golangdaddy/roadside/pkg/surface"
)

// FrameFunc paints and advances one tick of an animation on s
type FrameFunc func(s surface.Surface)

// Scheduler calls a FrameFunc again and again under the control of some host
// until ctx is cancelled or the host stops. Frames never overlap.
type Scheduler interface {
	Run(ctx context.Context, frame FrameFunc) error
}

// limitReached reports whether a frame cap of max (0 means none) is used up
func limitReached(frames, max uint64) bool {
	return max > 0 && frames >= max
}
