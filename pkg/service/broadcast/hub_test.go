package broadcast_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/service/broadcast"
	"github.com/m-mizutani/gt"
)

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func decode(t *testing.T, data []byte) envelope {
	t.Helper()
	var e envelope
	gt.NoError(t, json.Unmarshal(data, &e)).Required()
	return e
}

func TestHub_BroadcastReachesEveryObserver(t *testing.T) {
	ctx := context.Background()
	hub := broadcast.New()
	a := hub.Subscribe()
	b := hub.Subscribe()
	gt.Value(t, hub.Count()).Equal(2)

	hub.Broadcast(ctx, model.NewEvent(types.EventNewRequest, map[string]string{"id": "r1"}))

	for _, o := range []*broadcast.Observer{a, b} {
		e := decode(t, <-o.Queue())
		gt.Value(t, e.Event).Equal("newRequest")
		gt.String(t, string(e.Data)).Contains(`"r1"`)
	}
}

func TestHub_PreservesEmitOrderPerObserver(t *testing.T) {
	ctx := context.Background()
	hub := broadcast.New(broadcast.WithBufferSize(16))
	o := hub.Subscribe()

	hub.Broadcast(ctx, model.NewEvent(types.EventRequestUpdated, 1))
	hub.Broadcast(ctx, model.NewEvent(types.EventVolunteerUpdated, 2))
	hub.Broadcast(ctx, model.NewEvent(types.EventRequestUpdated, 3))

	gt.Value(t, decode(t, <-o.Queue()).Event).Equal("requestUpdated")
	gt.Value(t, decode(t, <-o.Queue()).Event).Equal("volunteerUpdated")
	e := decode(t, <-o.Queue())
	gt.Value(t, string(e.Data)).Equal("3")
}

func TestHub_EvictsSlowObserver(t *testing.T) {
	ctx := context.Background()
	hub := broadcast.New(broadcast.WithBufferSize(2))
	slow := hub.Subscribe()
	fast := hub.Subscribe()

	for i := range 3 {
		hub.Broadcast(ctx, model.NewEvent(types.EventCheckIn, i))
		<-fast.Queue()
	}

	gt.Value(t, hub.Count()).Equal(1)

	// the slow observer drains what it had, then sees its queue closed
	<-slow.Queue()
	<-slow.Queue()
	_, ok := <-slow.Queue()
	gt.Bool(t, ok).False()
}

func TestHub_SendTargetsOneObserver(t *testing.T) {
	ctx := context.Background()
	hub := broadcast.New()
	sender := hub.Subscribe()
	other := hub.Subscribe()

	result := &model.CommandResult{Command: types.CommandAcceptRequest, Outcome: types.OutcomeRejected, Reason: types.RejectNotPending}
	gt.NoError(t, hub.Send(ctx, sender, model.NewEvent(types.EventCommandResult, result))).Required()

	e := decode(t, <-sender.Queue())
	gt.Value(t, e.Event).Equal("commandResult")
	gt.String(t, string(e.Data)).Contains("not_pending")

	select {
	case <-other.Queue():
		t.Fatal("reply leaked to another observer")
	default:
	}

	hub.Unsubscribe(sender)
	err := hub.Send(ctx, sender, model.NewEvent(types.EventError, nil))
	gt.Error(t, err).Is(broadcast.ErrObserverGone)
}

func TestHub_Close(t *testing.T) {
	hub := broadcast.New()
	o := hub.Subscribe()
	hub.Unsubscribe(o)
	hub.Unsubscribe(o)

	live := hub.Subscribe()
	hub.Close()

	_, ok := <-live.Queue()
	gt.Bool(t, ok).False()
	gt.Value(t, hub.Count()).Equal(0)

	late := hub.Subscribe()
	_, ok = <-late.Queue()
	gt.Bool(t, ok).False()
}

func TestHub_ConcurrentBroadcastAndSubscribe(t *testing.T) {
	ctx := context.Background()
	hub := broadcast.New(broadcast.WithBufferSize(1024))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := hub.Subscribe()
			for range 10 {
				hub.Broadcast(ctx, model.NewEvent(types.EventCheckIn, nil))
			}
			hub.Unsubscribe(o)
		}()
	}
	wg.Wait()
	gt.Value(t, hub.Count()).Equal(0)
}
