// Package timeutil contains the timing helpers used while waiting on a
// network launch.
package timeutil

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the context ended the wait.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AddMinutes offsets the UTC minute of base by n. A zero base means now.
//
// The result wraps modulo 59, not 60: minute 58 plus one is 0.
func AddMinutes(n int, base time.Time) int {
	if base.IsZero() {
		base = time.Now()
	}
	return (base.UTC().Minute() + 59 + n) % 59
}
