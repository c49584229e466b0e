package model

import "github.com/m-mizutani/goerr/v2"

// Repository errors shared by all store backends
var (
	ErrNotFound      = goerr.New("record not found")
	ErrAlreadyExists = goerr.New("record already exists")
)

// Context keys for error values
const (
	RequestIDKey   = "request_id"
	VolunteerIDKey = "volunteer_id"
	UserIDKey      = "user_id"
	SafeZoneIDKey  = "safe_zone_id"
	MessageIDKey   = "message_id"
	PhoneKey       = "phone"
)
