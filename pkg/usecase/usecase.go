package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/interfaces"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
)

const (
	// DefaultVerificationTTL is how long an issued verification code stays valid
	DefaultVerificationTTL = 10 * time.Minute

	// maxIDAttempts bounds id regeneration on a store collision
	maxIDAttempts = 3
)

type UseCases struct {
	core *core

	Assignment   *AssignmentUseCase
	Request      *RequestUseCase
	Registration *RegistrationUseCase
	Verification *VerificationUseCase
	Messaging    *MessagingUseCase
	CheckIn      *CheckInUseCase
	SafeZone     *SafeZoneUseCase
}

type Option func(*UseCases)

// WithBroadcaster sets the channel every accepted mutation is published to
func WithBroadcaster(b interfaces.Broadcaster) Option {
	return func(uc *UseCases) {
		uc.core.broadcaster = b
	}
}

// WithNotifier enables coordinator notifications for urgent requests and forwarded alerts
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.core.notifier = n
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.core.now = now
	}
}

func WithVerificationTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.core.verificationTTL = ttl
	}
}

// WithExposeVerificationCode returns the issued code in the send-code response.
// There is no SMS delivery, so this is how the demo client learns the code.
func WithExposeVerificationCode(expose bool) Option {
	return func(uc *UseCases) {
		uc.core.exposeCode = expose
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		core: &core{
			repo:            repo,
			broadcaster:     nopBroadcaster{},
			now:             time.Now,
			verificationTTL: DefaultVerificationTTL,
			exposeCode:      true,
		},
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assignment = &AssignmentUseCase{core: uc.core}
	uc.Request = &RequestUseCase{core: uc.core}
	uc.Registration = &RegistrationUseCase{core: uc.core}
	uc.Verification = &VerificationUseCase{core: uc.core}
	uc.Messaging = &MessagingUseCase{core: uc.core}
	uc.CheckIn = &CheckInUseCase{core: uc.core}
	uc.SafeZone = &SafeZoneUseCase{core: uc.core}

	return uc
}

// core is the state shared by every use case. mu is the command lock: every
// mutating command holds it from its first read to its last publish, so commands
// never interleave and each observer receives events in emit order.
type core struct {
	mu sync.Mutex

	repo            interfaces.Repository
	broadcaster     interfaces.Broadcaster
	notifier        interfaces.Notifier
	now             func() time.Time
	verificationTTL time.Duration
	exposeCode      bool
}

func (c *core) publish(ctx context.Context, eventType types.EventType, data any) {
	c.broadcaster.Broadcast(ctx, model.NewEvent(eventType, data))
}

func (c *core) timestamp() time.Time {
	return c.now().UTC()
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(context.Context, *model.Event) {}
