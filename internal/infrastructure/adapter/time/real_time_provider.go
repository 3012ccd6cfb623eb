package time

import (
	"context"
	"time"

	"github.com/romeopeter/payment-orchestrator/internal/domain/port/core"
)

// RealTimeProvider is the wall clock, reported in UTC so stored timestamps compare consistently
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

func (RealTimeProvider) Wait(ctx context.Context, d core.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.Std())
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
