package types

import "fmt"

// RequestStatus represents the lifecycle state of a help request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusAssigned  RequestStatus = "Assigned"
	RequestStatusFulfilled RequestStatus = "Fulfilled"
)

// AllRequestStatuses returns all valid request statuses in lifecycle order
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusPending,
		RequestStatusAssigned,
		RequestStatusFulfilled,
	}
}

// IsValid checks if the request status is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending,
		RequestStatusAssigned,
		RequestStatusFulfilled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible from s
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusFulfilled
}

// HasAssignee reports whether a request in this status must carry an assigned volunteer
func (s RequestStatus) HasAssignee() bool {
	return s == RequestStatusAssigned || s == RequestStatusFulfilled
}

// CanTransitionTo reports whether moving from s to next is a legal step.
// Pending -> Fulfilled is permitted because completion has no status precondition.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusAssigned || next == RequestStatusFulfilled
	case RequestStatusAssigned:
		return next == RequestStatusFulfilled
	default:
		return false
	}
}

// String returns the string representation of the request status
func (s RequestStatus) String() string {
	return string(s)
}

// ParseRequestStatus parses a string into a RequestStatus
func ParseRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return status, nil
}
