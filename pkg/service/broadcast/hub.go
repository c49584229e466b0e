package broadcast

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/utils/errutil"
	"github.com/MohitGedela/GeoShield/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBufferSize is the per-observer queue length
const DefaultBufferSize = 64

// ErrObserverGone is returned when sending to an observer that left or was evicted
var ErrObserverGone = goerr.New("observer is no longer subscribed")

// Observer is one connected client. Queue yields encoded events in emit order and is
// closed when the observer is unsubscribed or evicted.
type Observer struct {
	id    string
	queue chan []byte
}

func (o *Observer) ID() string {
	return o.id
}

func (o *Observer) Queue() <-chan []byte {
	return o.queue
}

// Hub fans every event out to all subscribed observers. Publishing never blocks: an
// observer whose queue is full is evicted, and must re-sync with a full-state fetch
// when it reconnects, instead of silently missing events mid-stream.
type Hub struct {
	mu         sync.Mutex
	observers  map[string]*Observer
	bufferSize int
	closed     bool
}

var _ interfaces.Broadcaster = &Hub{}

type Option func(*Hub)

func WithBufferSize(size int) Option {
	return func(h *Hub) {
		if size > 0 {
			h.bufferSize = size
		}
	}
}

func New(opts ...Option) *Hub {
	h := &Hub{
		observers:  make(map[string]*Observer),
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers a new observer. After Close it returns an observer whose queue is
// already closed.
func (h *Hub) Subscribe() *Observer {
	h.mu.Lock()
	defer h.mu.Unlock()

	o := &Observer{
		id:    uuid.NewString(),
		queue: make(chan []byte, h.bufferSize),
	}
	if h.closed {
		close(o.queue)
		return o
	}
	h.observers[o.id] = o
	return o
}

// Unsubscribe removes the observer. Calling it twice is safe.
func (h *Hub) Unsubscribe(o *Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(o)
}

// Broadcast encodes event once and queues it for every observer
func (h *Hub) Broadcast(ctx context.Context, event *model.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to encode event", goerr.V("event", event.Type)), "broadcast dropped")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, o := range h.observers {
		select {
		case o.queue <- data:
		default:
			logging.From(ctx).Warn("observer queue full, evicting",
				"observer_id", o.id,
				"event", event.Type)
			h.remove(o)
		}
	}
}

// Send queues event for a single observer, used for replies to that observer's commands
func (h *Hub) Send(ctx context.Context, o *Observer, event *model.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return goerr.Wrap(err, "failed to encode event", goerr.V("event", event.Type))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.observers[o.id]; !ok {
		return goerr.Wrap(ErrObserverGone, "cannot send event", goerr.V("observer_id", o.id))
	}
	select {
	case o.queue <- data:
		return nil
	default:
		logging.From(ctx).Warn("observer queue full, evicting", "observer_id", o.id, "event", event.Type)
		h.remove(o)
		return goerr.Wrap(ErrObserverGone, "observer evicted", goerr.V("observer_id", o.id))
	}
}

// Count returns the number of subscribed observers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Close unsubscribes every observer and rejects later subscriptions
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, o := range h.observers {
		h.remove(o)
	}
}

// remove must be called with mu held
func (h *Hub) remove(o *Observer) {
	if _, ok := h.observers[o.id]; !ok {
		return
	}
	delete(h.observers, o.id)
	close(o.queue)
}
