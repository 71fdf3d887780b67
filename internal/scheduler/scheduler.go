// Package scheduler drives the periodic reconciliation sweep in the
// background. One sequential run at a time; the sweep itself throttles its
// writes against the portal.
package scheduler

import (
	"context"
	"time"

	"tender-service/utils"
)

// Reconciler is the sweep entry point.
type Reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}

// Run blocks, executing one sweep per interval until ctx is canceled.
// Start it on its own goroutine.
func Run(ctx context.Context, r Reconciler, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.Info("reconciliation scheduler stopped", nil)
			return
		case <-ticker.C:
			started := time.Now()
			updated, err := r.ReconcileAll(ctx)
			if err != nil {
				utils.Error("reconciliation sweep failed", map[string]any{
					"error": err.Error(),
				})
				continue
			}
			utils.Info("reconciliation sweep finished", map[string]any{
				"updated":  updated,
				"duration": time.Since(started).String(),
			})
		}
	}
}
