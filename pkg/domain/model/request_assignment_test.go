package model_test

import (
	"testing"
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRequest_Assign(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("pending request becomes assigned", func(t *testing.T) {
		req := &model.Request{ID: "r1", Status: types.RequestStatusPending}
		gt.B(t, req.Assign("v1", "Alice", now)).True()
		gt.V(t, req.Status).Equal(types.RequestStatusAssigned)
		gt.V(t, req.AssignedVolunteerID).Equal(model.VolunteerID("v1"))
		gt.V(t, req.AssignedVolunteerName).Equal("Alice")
		gt.NoError(t, req.Validate())
	})

	t.Run("assigned request keeps first assignee", func(t *testing.T) {
		req := &model.Request{ID: "r1", Status: types.RequestStatusPending}
		gt.B(t, req.Assign("v1", "Alice", now)).True()
		gt.B(t, req.Assign("v2", "Bob", now)).False()
		gt.V(t, req.AssignedVolunteerID).Equal(model.VolunteerID("v1"))
	})

	t.Run("fulfilled request cannot be assigned", func(t *testing.T) {
		req := &model.Request{ID: "r1", Status: types.RequestStatusPending}
		gt.B(t, req.Fulfill("v1", "Alice", now)).True()
		gt.B(t, req.Assign("v2", "Bob", now)).False()
		gt.V(t, req.Status).Equal(types.RequestStatusFulfilled)
		gt.V(t, req.AssignedVolunteerID).Equal(model.VolunteerID("v1"))
	})
}

func TestRequest_Fulfill(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("assigned request is fulfilled", func(t *testing.T) {
		req := &model.Request{ID: "r1", Status: types.RequestStatusPending}
		req.Assign("v1", "Alice", now)
		gt.B(t, req.Fulfill("v2", "Bob", now.Add(time.Hour))).True()

		gt.V(t, req.Status).Equal(types.RequestStatusFulfilled)
		gt.V(t, req.AssignedVolunteerID).Equal(model.VolunteerID("v1"))
		gt.V(t, req.CompletedAt).NotNil()
		gt.B(t, req.CompletedAt.Equal(now.Add(time.Hour))).True()
		gt.NoError(t, req.Validate())
	})

	t.Run("pending request records completing volunteer", func(t *testing.T) {
		req := &model.Request{ID: "r1", Status: types.RequestStatusPending}
		gt.B(t, req.Fulfill("v2", "Bob", now)).True()
		gt.V(t, req.AssignedVolunteerID).Equal(model.VolunteerID("v2"))
		gt.NoError(t, req.Validate())
	})

	t.Run("fulfilled request is terminal", func(t *testing.T) {
		req := &model.Request{ID: "r1", Status: types.RequestStatusPending}
		gt.B(t, req.Fulfill("v1", "Alice", now)).True()
		gt.B(t, req.Fulfill("v1", "Alice", now.Add(time.Hour))).False()
		gt.B(t, req.CompletedAt.Equal(now)).True()
	})
}

func TestRequest_Validate(t *testing.T) {
	completed := time.Now()
	tests := []struct {
		name    string
		req     model.Request
		wantErr bool
	}{
		{name: "pending without assignee", req: model.Request{Status: types.RequestStatusPending}},
		{name: "pending with assignee", req: model.Request{Status: types.RequestStatusPending, AssignedVolunteerID: "v1"}, wantErr: true},
		{name: "assigned without assignee", req: model.Request{Status: types.RequestStatusAssigned}, wantErr: true},
		{name: "fulfilled without completedAt", req: model.Request{Status: types.RequestStatusFulfilled, AssignedVolunteerID: "v1"}, wantErr: true},
		{name: "fulfilled", req: model.Request{Status: types.RequestStatusFulfilled, AssignedVolunteerID: "v1", CompletedAt: &completed}},
		{name: "unknown status", req: model.Request{Status: "Lost"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
