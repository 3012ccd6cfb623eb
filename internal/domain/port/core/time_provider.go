package core

import (
	"context"
	"time"
)

// Duration is the domain's span of time; convert with Std at adapter boundaries
type Duration time.Duration

const (
	Millisecond = Duration(time.Millisecond)
	Second      = Duration(time.Second)
)

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock behind entity timestamps, token expiry,
// request latency and retry waits. Now must report UTC.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	// Wait blocks for d and returns ctx.Err() if ctx ends first
	Wait(ctx context.Context, d Duration) error
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
