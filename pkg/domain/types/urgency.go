package types

import "fmt"

// Urgency represents how quickly a request needs attention
type Urgency string

const (
	UrgencyUrgent Urgency = "Urgent"
	UrgencyHigh   Urgency = "High"
	UrgencyNormal Urgency = "Normal"
	UrgencyLow    Urgency = "Low"
)

// AllUrgencies returns all valid urgency levels, most urgent first
func AllUrgencies() []Urgency {
	return []Urgency{
		UrgencyUrgent,
		UrgencyHigh,
		UrgencyNormal,
		UrgencyLow,
	}
}

// IsValid checks if the urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyUrgent,
		UrgencyHigh,
		UrgencyNormal,
		UrgencyLow:
		return true
	default:
		return false
	}
}

// Normalize returns the urgency, treating empty as UrgencyNormal.
func (u Urgency) Normalize() Urgency {
	if u == "" {
		return UrgencyNormal
	}
	return u
}

// String returns the string representation of the urgency
func (u Urgency) String() string {
	return string(u)
}

// ParseUrgency parses a string into an Urgency. Empty input yields UrgencyNormal.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s).Normalize()
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}
