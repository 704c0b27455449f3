// Package clock provides context-aware sleeping and interval jitter for the
// refresh and retry loops in the daemons.
package clock

import (
	"context"
	"math/rand"
	"time"
)

// SleepWithContext waits for the duration and returns nil, or returns the
// context error as soon as the context ends.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Jitter spreads d by a random factor in [1-fraction, 1+fraction] so that
// periodic workers sharing an interval do not wake in lockstep.
func Jitter(d time.Duration, fraction float64) time.Duration {
	if d <= 0 || fraction <= 0 {
		return d
	}
	spread := (rand.Float64()*2 - 1) * fraction * float64(d)
	return d + time.Duration(spread)
}
