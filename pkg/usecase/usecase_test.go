package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/repository/memory"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// recorder captures every published event in order
type recorder struct {
	mu     sync.Mutex
	events []*model.Event
}

func (r *recorder) Broadcast(_ context.Context, event *model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) Types() []types.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]types.EventType, len(r.events))
	for i, e := range r.events {
		result[i] = e.Type
	}
	return result
}

func (r *recorder) Events() []*model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Event(nil), r.events...)
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type mockNotifier struct {
	mu     sync.Mutex
	urgent []*model.Request
	alerts [][]*model.Alert
	calls  chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan struct{}, 16)}
}

func (n *mockNotifier) NotifyUrgentRequest(_ context.Context, req *model.Request) error {
	n.mu.Lock()
	n.urgent = append(n.urgent, req)
	n.mu.Unlock()
	n.calls <- struct{}{}
	return nil
}

func (n *mockNotifier) NotifyAlertForwarded(_ context.Context, _ *model.Request, alerts []*model.Alert) error {
	n.mu.Lock()
	n.alerts = append(n.alerts, alerts)
	n.mu.Unlock()
	n.calls <- struct{}{}
	return nil
}

func (n *mockNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
}

type fixture struct {
	repo *memory.Memory
	rec  *recorder
	uc   *usecase.UseCases
}

func setup(t *testing.T, opts ...usecase.Option) *fixture {
	t.Helper()
	repo := memory.New()
	rec := &recorder{}
	opts = append([]usecase.Option{usecase.WithBroadcaster(rec)}, opts...)
	return &fixture{
		repo: repo,
		rec:  rec,
		uc:   usecase.New(repo, opts...),
	}
}

func (f *fixture) createRequest(t *testing.T, urgency types.Urgency) *model.Request {
	t.Helper()
	req, err := f.uc.Request.Create(context.Background(), usecase.CreateRequestInput{
		Type:        "Medical",
		Description: "Insulin needed",
		Urgency:     urgency,
		Location:    model.Location{Lat: 35.68, Lng: 139.76},
		PeopleCount: 2,
	})
	gt.NoError(t, err).Required()
	return req
}

func (f *fixture) registerVolunteer(t *testing.T, name, phone string) *model.Volunteer {
	t.Helper()
	vol, err := f.uc.Registration.RegisterVolunteer(context.Background(), usecase.RegisterVolunteerInput{
		Name:   name,
		Phone:  phone,
		Skills: []string{"first aid"},
	})
	gt.NoError(t, err).Required()
	return vol
}

func (f *fixture) volunteer(t *testing.T, id model.VolunteerID) *model.Volunteer {
	t.Helper()
	vol, err := f.repo.Volunteer().Get(context.Background(), id)
	gt.NoError(t, err).Required()
	return vol
}

func (f *fixture) request(t *testing.T, id model.RequestID) *model.Request {
	t.Helper()
	req, err := f.repo.Request().Get(context.Background(), id)
	gt.NoError(t, err).Required()
	return req
}
