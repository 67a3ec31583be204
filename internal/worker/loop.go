package worker

import (
	"context"
	"time"
)

// runEvery вызывает tick сразу и затем с периодом interval, пока не отменен ctx
func runEvery(ctx context.Context, interval time.Duration, tick func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(ctx)
		}
	}
}
