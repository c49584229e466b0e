package usecase_test

import (
	"context"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/MohitGedela/GeoShield/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestRequest_Create(t *testing.T) {
	ctx := context.Background()
	notifier := newMockNotifier()
	f := setup(t, usecase.WithNotifier(notifier))

	req, err := f.uc.Request.Create(ctx, usecase.CreateRequestInput{
		Type:         "Rescue",
		Description:  "Trapped on roof",
		Urgency:      types.UrgencyUrgent,
		Location:     model.Location{Lat: 1, Lng: 2, Address: "1 Main St"},
		PeopleCount:  3,
		ContactPhone: "555-0100",
	})
	gt.NoError(t, err).Required()
	gt.S(t, req.ID.String()).NotEqual("")
	gt.Value(t, req.Status).Equal(types.RequestStatusPending)
	gt.Value(t, req.AssignedVolunteerID).Equal(model.VolunteerID(""))
	gt.Bool(t, req.CreatedAt.IsZero()).False()

	events := f.rec.Events()
	gt.A(t, events).Length(1).Required()
	gt.Value(t, events[0].Type).Equal(types.EventNewRequest)

	notifier.wait(t)
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	gt.A(t, notifier.urgent).Length(1).Required()
	gt.Value(t, notifier.urgent[0].ID).Equal(req.ID)
}

func TestRequest_CreateDefaultsUrgency(t *testing.T) {
	f := setup(t)
	req, err := f.uc.Request.Create(context.Background(), usecase.CreateRequestInput{Type: "Food"})
	gt.NoError(t, err).Required()
	gt.Value(t, req.Urgency).Equal(types.UrgencyNormal)
}

func TestRequest_CreateValidation(t *testing.T) {
	testCases := []struct {
		name  string
		input usecase.CreateRequestInput
		want  error
	}{
		{
			name:  "missing type",
			input: usecase.CreateRequestInput{Urgency: types.UrgencyHigh},
			want:  usecase.ErrMissingField,
		},
		{
			name:  "unknown urgency",
			input: usecase.CreateRequestInput{Type: "Food", Urgency: "Whenever"},
			want:  usecase.ErrInvalidField,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setup(t)
			_, err := f.uc.Request.Create(context.Background(), tc.input)
			gt.Error(t, err).Is(tc.want)
			gt.Error(t, err).Is(usecase.ErrValidation)
			gt.A(t, f.rec.Types()).Length(0)
		})
	}
}

func TestRequest_UniqueIDs(t *testing.T) {
	f := setup(t)
	seen := map[model.RequestID]bool{}
	for range 50 {
		req := f.createRequest(t, types.UrgencyLow)
		gt.Bool(t, seen[req.ID]).False()
		seen[req.ID] = true
	}

	requests, err := f.uc.Request.List(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, requests).Length(50)
}

func TestRequest_UpdateMergesDescriptiveFields(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	req := f.createRequest(t, types.UrgencyLow)
	vol := f.registerVolunteer(t, "Aiko", "555-0001")
	_, err := f.uc.Assignment.Accept(ctx, usecase.AcceptInput{RequestID: req.ID, VolunteerID: vol.ID})
	gt.NoError(t, err).Required()
	f.rec.Reset()

	description := "Insulin and water"
	urgency := types.UrgencyHigh
	updated, err := f.uc.Request.Update(ctx, req.ID, usecase.UpdateRequestInput{
		Description: &description,
		Urgency:     &urgency,
	})
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Description).Equal(description)
	gt.Value(t, updated.Urgency).Equal(types.UrgencyHigh)
	gt.Value(t, updated.Type).Equal("Medical")
	gt.Value(t, updated.Status).Equal(types.RequestStatusAssigned)
	gt.Value(t, updated.AssignedVolunteerID).Equal(vol.ID)
	gt.Value(t, f.rec.Types()).Equal([]types.EventType{types.EventRequestUpdated})
}

func TestRequest_UpdateNotFound(t *testing.T) {
	f := setup(t)
	description := "x"
	_, err := f.uc.Request.Update(context.Background(), "missing", usecase.UpdateRequestInput{Description: &description})
	gt.Error(t, err).Is(model.ErrNotFound)
}

func TestRequest_Get(t *testing.T) {
	f := setup(t)
	req := f.createRequest(t, types.UrgencyLow)

	got, err := f.uc.Request.Get(context.Background(), req.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.ID).Equal(req.ID)

	_, err = f.uc.Request.Get(context.Background(), "missing")
	gt.Error(t, err).Is(model.ErrNotFound)
}
