package model

import "github.com/MohitGedela/GeoShield/pkg/domain/types"

// Event is the envelope carried over the broadcast channel in both directions
type Event struct {
	Type types.EventType `json:"event"`
	Data any             `json:"data"`
}

// NewEvent builds an event carrying data
func NewEvent(eventType types.EventType, data any) *Event {
	return &Event{Type: eventType, Data: data}
}

// CommandResult reports the outcome of an observer command back to its sender
type CommandResult struct {
	Command types.CommandType  `json:"command"`
	Outcome types.Outcome      `json:"outcome"`
	Reason  types.RejectReason `json:"reason,omitempty"`
}

// CommandError reports a failed observer command back to its sender
type CommandError struct {
	Command types.CommandType `json:"command,omitempty"`
	Error   string            `json:"error"`
}
