package types

import "fmt"

// CheckInStatus is the self-reported condition of a person checking in
type CheckInStatus string

const (
	CheckInStatusSafe      CheckInStatus = "Safe"
	CheckInStatusNeedsHelp CheckInStatus = "NeedsHelp"
)

// IsValid checks if the check-in status is valid
func (s CheckInStatus) IsValid() bool {
	switch s {
	case CheckInStatusSafe, CheckInStatusNeedsHelp:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as CheckInStatusSafe.
func (s CheckInStatus) Normalize() CheckInStatus {
	if s == "" {
		return CheckInStatusSafe
	}
	return s
}

// String returns the string representation of the status
func (s CheckInStatus) String() string {
	return string(s)
}

// ParseCheckInStatus parses a string into a CheckInStatus. Empty input yields CheckInStatusSafe.
func ParseCheckInStatus(s string) (CheckInStatus, error) {
	status := CheckInStatus(s).Normalize()
	if !status.IsValid() {
		return "", fmt.Errorf("invalid check-in status: %s", s)
	}
	return status, nil
}
