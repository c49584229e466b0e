package model

import (
	"time"

	"github.com/MohitGedela/GeoShield/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Request is a unit of help needed by a survivor
type Request struct {
	ID                    RequestID           `json:"id" firestore:"id"`
	Type                  string              `json:"type" firestore:"type"`
	Description           string              `json:"description" firestore:"description"`
	Urgency               types.Urgency       `json:"urgency" firestore:"urgency"`
	Location              Location            `json:"location" firestore:"location"`
	PeopleCount           int                 `json:"peopleCount,omitempty" firestore:"people_count"`
	SurvivorID            UserID              `json:"survivorId,omitempty" firestore:"survivor_id"`
	SurvivorName          string              `json:"survivorName,omitempty" firestore:"survivor_name"`
	ContactPhone          string              `json:"contactPhone,omitempty" firestore:"contact_phone"`
	Status                types.RequestStatus `json:"status" firestore:"status"`
	AssignedVolunteerID   VolunteerID         `json:"assignedVolunteerId,omitempty" firestore:"assigned_volunteer_id"`
	AssignedVolunteerName string              `json:"assignedVolunteerName,omitempty" firestore:"assigned_volunteer_name"`
	CreatedAt             time.Time           `json:"createdAt" firestore:"created_at"`
	UpdatedAt             time.Time           `json:"updatedAt" firestore:"updated_at"`
	CompletedAt           *time.Time          `json:"completedAt,omitempty" firestore:"completed_at"`
}

// Validate checks the request's own invariants: a known status, and an assignee
// present exactly when the status is Assigned or Fulfilled.
func (r *Request) Validate() error {
	if !r.Status.IsValid() {
		return goerr.New("invalid request status", goerr.V(RequestIDKey, r.ID), goerr.V("status", r.Status))
	}
	if r.Status.HasAssignee() != (r.AssignedVolunteerID != "") {
		return goerr.New("assignee does not match request status",
			goerr.V(RequestIDKey, r.ID),
			goerr.V("status", r.Status),
			goerr.V(VolunteerIDKey, r.AssignedVolunteerID))
	}
	if (r.Status == types.RequestStatusFulfilled) != (r.CompletedAt != nil) {
		return goerr.New("completedAt does not match request status",
			goerr.V(RequestIDKey, r.ID), goerr.V("status", r.Status))
	}
	return nil
}

// Assign moves a Pending request to Assigned. It reports false, leaving r untouched,
// when the request is not Pending.
func (r *Request) Assign(volunteerID VolunteerID, volunteerName string, now time.Time) bool {
	if r.Status != types.RequestStatusPending {
		return false
	}
	r.Status = types.RequestStatusAssigned
	r.AssignedVolunteerID = volunteerID
	r.AssignedVolunteerName = volunteerName
	r.UpdatedAt = now
	return true
}

// Fulfill moves the request to the terminal Fulfilled state. A request completed
// straight from Pending records the completing volunteer as its assignee.
// It reports false when the request is already Fulfilled.
func (r *Request) Fulfill(volunteerID VolunteerID, volunteerName string, now time.Time) bool {
	if !r.Status.CanTransitionTo(types.RequestStatusFulfilled) {
		return false
	}
	if r.AssignedVolunteerID == "" {
		r.AssignedVolunteerID = volunteerID
		r.AssignedVolunteerName = volunteerName
	}
	r.Status = types.RequestStatusFulfilled
	completedAt := now
	r.CompletedAt = &completedAt
	r.UpdatedAt = now
	return true
}
