package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrMissingName        = goerr.New("name is required")
	ErrDuplicateSafeZone  = goerr.New("duplicate safe zone ID")
	ErrInvalidSafeZoneID  = goerr.New("invalid safe zone ID format")
	ErrNegativeCapacity   = goerr.New("capacity and occupancy cannot be negative")
	ErrInvalidCoordinates = goerr.New("coordinates are out of range")
)

// Context keys for error values
const (
	ConfigPathKey    = "config_path"
	SafeZoneIDKey    = "safe_zone_id"
	SafeZoneIndexKey = "safe_zone_index"
)
