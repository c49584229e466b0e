package types

// EventType names an outbound event fanned out to every observer
type EventType string

const (
	EventNewRequest          EventType = "newRequest"
	EventRequestUpdated      EventType = "requestUpdated"
	EventVolunteerRegistered EventType = "volunteerRegistered"
	EventVolunteerUpdated    EventType = "volunteerUpdated"
	EventCheckIn             EventType = "checkIn"
	EventNewMessage          EventType = "newMessage"
	EventMessageRead         EventType = "messageRead"
	EventAlertForwarded      EventType = "alertForwarded"
	EventSafeZoneUpdated     EventType = "safeZoneUpdated"

	// Sent to the originating observer only
	EventCommandResult EventType = "commandResult"
	EventError         EventType = "error"
)

// String returns the wire name of the event
func (e EventType) String() string {
	return string(e)
}

// CommandType names an inbound command sent by an observer
type CommandType string

const (
	CommandAcceptRequest   CommandType = "acceptRequest"
	CommandCompleteRequest CommandType = "completeRequest"
	CommandSendMessage     CommandType = "sendMessage"
	CommandForwardAlert    CommandType = "forwardAlert"
)

// IsValid checks if the command type is known
func (c CommandType) IsValid() bool {
	switch c {
	case CommandAcceptRequest,
		CommandCompleteRequest,
		CommandSendMessage,
		CommandForwardAlert:
		return true
	default:
		return false
	}
}

// String returns the wire name of the command
func (c CommandType) String() string {
	return string(c)
}

// Outcome is the result of an assignment transition
type Outcome string

const (
	OutcomeUpdated  Outcome = "updated"
	OutcomeRejected Outcome = "rejected"
)

// RejectReason explains why a transition was skipped without error
type RejectReason string

const (
	RejectRequestNotFound  RejectReason = "request_not_found"
	RejectNotPending       RejectReason = "not_pending"
	RejectAlreadyFulfilled RejectReason = "already_fulfilled"
)
