// Package delay provides the artificial pauses that stand in for remote
// call latency in the simulated upstream integrations.
package delay

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
// A zero or negative d returns immediately, which is how tests opt out.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
