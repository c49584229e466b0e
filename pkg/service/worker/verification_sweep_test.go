package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/repository/memory"
	"github.com/MohitGedela/GeoShield/pkg/service/worker"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) SweepExpired(ctx context.Context) (int, error) {
	s.calls.Add(1)
	return 0, s.err
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestVerificationSweepWorker_SweepsPeriodically(t *testing.T) {
	sweeper := &countingSweeper{}
	w := worker.NewVerificationSweepWorker(sweeper, 10*time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	waitFor(t, func() bool { return sweeper.calls.Load() >= 2 })
	w.Stop()
	w.Stop()

	calls := sweeper.calls.Load()
	time.Sleep(30 * time.Millisecond)
	gt.Value(t, sweeper.calls.Load()).Equal(calls)
}

func TestVerificationSweepWorker_KeepsRunningAfterError(t *testing.T) {
	sweeper := &countingSweeper{err: goerr.New("store unavailable")}
	w := worker.NewVerificationSweepWorker(sweeper, 10*time.Millisecond)

	gt.NoError(t, w.Start(context.Background())).Required()
	waitFor(t, func() bool { return sweeper.calls.Load() >= 3 })
	w.Stop()
}

func TestVerificationSweepWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := worker.NewVerificationSweepWorker(&countingSweeper{}, time.Hour)

	gt.NoError(t, w.Start(ctx)).Required()
	cancel()
	w.Stop()
}

func TestVerificationSweepWorker_RemovesExpiredCodes(t *testing.T) {
	repo := memory.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var clock atomic.Pointer[time.Time]
	clock.Store(&now)

	uc := usecase.New(repo, usecase.WithClock(func() time.Time { return *clock.Load() }))
	ctx := context.Background()

	_, err := uc.Verification.SendCode(ctx, usecase.SendCodeInput{Phone: "555-0100", UserType: types.UserRoleSurvivor})
	gt.NoError(t, err).Required()

	later := now.Add(usecase.DefaultVerificationTTL + time.Second)
	clock.Store(&later)

	w := worker.NewVerificationSweepWorker(uc.Verification, 10*time.Millisecond)
	gt.NoError(t, w.Start(ctx)).Required()
	waitFor(t, func() bool {
		_, err := repo.Verification().Get(ctx, "555-0100")
		return err != nil
	})
	w.Stop()

	_, err = repo.Verification().Get(ctx, "555-0100")
	gt.Error(t, err).Is(model.ErrNotFound)
}
