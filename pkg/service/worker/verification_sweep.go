package worker

import (
	"context"
	"sync"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/utils/errutil"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
)

// Sweeper deletes expired verification codes and reports how many it removed
type Sweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// VerificationSweepWorker periodically purges verification codes nobody redeemed.
// Expired codes are already rejected on use; the sweep only bounds storage.
//
// Assumes a single server instance, like the rest of the process.
type VerificationSweepWorker struct {
	sweeper  Sweeper
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewVerificationSweepWorker creates a worker that sweeps every interval
func NewVerificationSweepWorker(sweeper Sweeper, interval time.Duration) *VerificationSweepWorker {
	return &VerificationSweepWorker{
		sweeper:  sweeper,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the sweep loop in a background goroutine
func (w *VerificationSweepWorker) Start(ctx context.Context) error {
	logging.Default().Info("Verification sweep worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion. Safe to call more than once.
func (w *VerificationSweepWorker) Stop() {
	w.stopOnce.Do(func() {
		logging.Default().Info("Verification sweep worker stopping")
		close(w.stopCh)
	})
	<-w.doneCh
}

func (w *VerificationSweepWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)

		case <-w.stopCh:
			logging.Default().Info("Verification sweep worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Verification sweep worker context cancelled")
			return
		}
	}
}

func (w *VerificationSweepWorker) sweep(ctx context.Context) {
	n, err := w.sweeper.SweepExpired(ctx)
	if err != nil {
		// Log error but continue worker
		_ = errutil.Handle(ctx, err, "verification sweep failed (will retry next interval)")
		return
	}
	if n > 0 {
		logging.Default().Info("Expired verification codes removed", "count", n)
	}
}
