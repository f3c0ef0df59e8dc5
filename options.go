package planar

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures a State during creation.
//
// Example:
//
//	s := planar.NewState(
//	    planar.WithAnchors(planar.Populate(1024, 1024, rng)...),
//	    planar.WithRand(rng),
//	)
type Option func(*stateOptions)

type stateOptions struct {
	hitRadius float32
	trim      float32
	rng       *rand.Rand
	anchors   []Point
	logger    *slog.Logger
}

func defaultOptions() stateOptions {
	return stateOptions{
		hitRadius: HitRadius,
		trim:      SegmentTrim,
	}
}

// WithHitRadius sets the distance under which a pointer is on an anchor.
// Non-positive values are ignored.
func WithHitRadius(r float32) Option {
	return func(o *stateOptions) {
		if r > 0 {
			o.hitRadius = r
		}
	}
}

// WithSegmentTrim sets the distance trimmed from each segment end before
// crossing tests on the drag path. Negative values are ignored.
func WithSegmentTrim(d float32) Option {
	return func(o *stateOptions) {
		if d >= 0 {
			o.trim = d
		}
	}
}

// WithRand sets the random source used by RandomizeEdges and Wiggle.
// Tests pass a seeded source to make bulk edits reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *stateOptions) {
		o.rng = r
	}
}

// WithAnchors seeds the State with one anchor per point, in order.
func WithAnchors(points ...Point) Option {
	return func(o *stateOptions) {
		o.anchors = append(o.anchors, points...)
	}
}

// WithLogger sets a logger for this State instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *stateOptions) {
		o.logger = l
	}
}
