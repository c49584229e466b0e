package async_test

import (
	"context"
	"testing"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestDispatch(t *testing.T) {
	t.Run("runs handler with a context that outlives the caller", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		async.Dispatch(ctx, func(ctx context.Context) error {
			done <- ctx.Err()
			return nil
		})
		cancel()

		select {
		case err := <-done:
			gt.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("handler was not called")
		}
	})

	t.Run("recovers from panic and error", func(t *testing.T) {
		done := make(chan struct{}, 2)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer func() { done <- struct{}{} }()
			panic("boom")
		})
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer func() { done <- struct{}{} }()
			return goerr.New("failed")
		})

		for range 2 {
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("handler was not called")
			}
		}
	})
}
