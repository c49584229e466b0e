package types

import "fmt"

// VolunteerStatus represents whether a volunteer currently holds missions
type VolunteerStatus string

const (
	VolunteerStatusAvailable VolunteerStatus = "Available"
	VolunteerStatusActive    VolunteerStatus = "Active"
)

// AllVolunteerStatuses returns all valid volunteer statuses
func AllVolunteerStatuses() []VolunteerStatus {
	return []VolunteerStatus{
		VolunteerStatusAvailable,
		VolunteerStatusActive,
	}
}

// IsValid checks if the volunteer status is valid
func (s VolunteerStatus) IsValid() bool {
	switch s {
	case VolunteerStatusAvailable,
		VolunteerStatusActive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the volunteer status
func (s VolunteerStatus) String() string {
	return string(s)
}

// ParseVolunteerStatus parses a string into a VolunteerStatus
func ParseVolunteerStatus(s string) (VolunteerStatus, error) {
	status := VolunteerStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid volunteer status: %s", s)
	}
	return status, nil
}
