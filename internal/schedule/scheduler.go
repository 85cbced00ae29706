package schedule

import (
	"context"
	"time"
)

// Every calls f once per interval on the calling goroutine until ctx is
// canceled or f returns false. The first call happens one interval after
// Every is entered.
func Every(ctx context.Context, interval time.Duration, f func() bool) {
	t := time.NewTimer(interval)
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			if !f() {
				return
			}
			t.Reset(interval)
		}
	}
}
