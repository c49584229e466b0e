package types_test

import (
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRequestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.RequestStatus
		want   bool
	}{
		{name: "pending", status: types.RequestStatusPending, want: true},
		{name: "assigned", status: types.RequestStatusAssigned, want: true},
		{name: "fulfilled", status: types.RequestStatusFulfilled, want: true},
		{name: "lowercase is invalid", status: types.RequestStatus("pending"), want: false},
		{name: "empty status", status: types.RequestStatus(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.status.IsValid()).Equal(tt.want)
		})
	}
}

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from types.RequestStatus
		to   types.RequestStatus
		want bool
	}{
		{types.RequestStatusPending, types.RequestStatusAssigned, true},
		{types.RequestStatusPending, types.RequestStatusFulfilled, true},
		{types.RequestStatusAssigned, types.RequestStatusFulfilled, true},
		{types.RequestStatusAssigned, types.RequestStatusPending, false},
		{types.RequestStatusAssigned, types.RequestStatusAssigned, false},
		{types.RequestStatusFulfilled, types.RequestStatusPending, false},
		{types.RequestStatusFulfilled, types.RequestStatusAssigned, false},
		{types.RequestStatusFulfilled, types.RequestStatusFulfilled, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			gt.Value(t, tt.from.CanTransitionTo(tt.to)).Equal(tt.want)
		})
	}
}

func TestRequestStatus_Predicates(t *testing.T) {
	gt.B(t, types.RequestStatusFulfilled.IsTerminal()).True()
	gt.B(t, types.RequestStatusAssigned.IsTerminal()).False()

	gt.B(t, types.RequestStatusPending.HasAssignee()).False()
	gt.B(t, types.RequestStatusAssigned.HasAssignee()).True()
	gt.B(t, types.RequestStatusFulfilled.HasAssignee()).True()
}

func TestParseRequestStatus(t *testing.T) {
	got, err := types.ParseRequestStatus("Assigned")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.RequestStatusAssigned)

	_, err = types.ParseRequestStatus("Closed")
	gt.Error(t, err)
}

func TestAllRequestStatuses(t *testing.T) {
	statuses := types.AllRequestStatuses()
	gt.A(t, statuses).Length(3)
	for _, status := range statuses {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}
}
