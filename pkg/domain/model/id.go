package model

import "github.com/google/uuid"

// Identifiers are UUIDv7 strings: time ordered, and unique across same-millisecond creation.

type RequestID string

type VolunteerID string

type UserID string

type SafeZoneID string

type CheckInID string

type MessageID string

type AlertID string

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func NewRequestID() RequestID     { return RequestID(newID()) }
func NewVolunteerID() VolunteerID { return VolunteerID(newID()) }
func NewUserID() UserID           { return UserID(newID()) }
func NewSafeZoneID() SafeZoneID   { return SafeZoneID(newID()) }
func NewCheckInID() CheckInID     { return CheckInID(newID()) }
func NewMessageID() MessageID     { return MessageID(newID()) }
func NewAlertID() AlertID         { return AlertID(newID()) }

func (id RequestID) String() string   { return string(id) }
func (id VolunteerID) String() string { return string(id) }
func (id UserID) String() string      { return string(id) }
func (id SafeZoneID) String() string  { return string(id) }
func (id CheckInID) String() string   { return string(id) }
func (id MessageID) String() string   { return string(id) }
func (id AlertID) String() string     { return string(id) }
