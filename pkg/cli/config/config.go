package config

import (
	"errors"
	"io/fs"
	"os"
	"regexp"

	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// App holds the --config flag
type App struct {
	path string
}

func (x *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file declaring safe zones",
			Sources:     cli.EnvVars("GEOSHIELD_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Path returns the configured file path, empty if none
func (x *App) Path() string {
	return x.path
}

// Configure loads the configuration file. Without --config it returns an empty configuration.
func (x *App) Configure() (*AppConfig, error) {
	if x.path == "" {
		return &AppConfig{}, nil
	}
	return LoadAppConfiguration(x.path)
}

// AppConfig represents the application configuration
type AppConfig struct {
	SafeZones []SafeZone `toml:"safe_zone"`
}

// SafeZone is a shelter declared in the configuration file
type SafeZone struct {
	ID        string   `toml:"id"`
	Name      string   `toml:"name"`
	Address   string   `toml:"address"`
	Lat       float64  `toml:"lat"`
	Lng       float64  `toml:"lng"`
	Capacity  int      `toml:"capacity"`
	Occupancy int      `toml:"occupancy"`
	Resources []string `toml:"resources"`
	Status    string   `toml:"status"`
}

var safeZoneIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Validate checks if the SafeZone is valid
func (s *SafeZone) Validate() error {
	if !safeZoneIDPattern.MatchString(s.ID) {
		return goerr.Wrap(ErrInvalidSafeZoneID, "safe zone ID must be lowercase alphanumeric with - or _",
			goerr.V(SafeZoneIDKey, s.ID))
	}
	if s.Name == "" {
		return goerr.Wrap(ErrMissingName, "safe zone name is required", goerr.V(SafeZoneIDKey, s.ID))
	}
	if s.Capacity < 0 || s.Occupancy < 0 {
		return goerr.Wrap(ErrNegativeCapacity, "invalid safe zone capacity",
			goerr.V(SafeZoneIDKey, s.ID),
			goerr.V("capacity", s.Capacity),
			goerr.V("occupancy", s.Occupancy))
	}
	if s.Lat < -90 || s.Lat > 90 || s.Lng < -180 || s.Lng > 180 {
		return goerr.Wrap(ErrInvalidCoordinates, "invalid safe zone location",
			goerr.V(SafeZoneIDKey, s.ID), goerr.V("lat", s.Lat), goerr.V("lng", s.Lng))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	ids := make(map[string]bool)
	for i, zone := range a.SafeZones {
		if err := zone.Validate(); err != nil {
			return goerr.Wrap(err, "invalid safe zone", goerr.V(SafeZoneIndexKey, i))
		}
		if ids[zone.ID] {
			return goerr.Wrap(ErrDuplicateSafeZone, "safe zone IDs must be unique",
				goerr.V(SafeZoneIDKey, zone.ID), goerr.V(SafeZoneIndexKey, i))
		}
		ids[zone.ID] = true
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, err.Error(), goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// ToSafeZones converts the declared safe zones to domain records
func (a *AppConfig) ToSafeZones() []*model.SafeZone {
	zones := make([]*model.SafeZone, len(a.SafeZones))
	for i, zone := range a.SafeZones {
		status := zone.Status
		if status == "" {
			status = "open"
		}
		zones[i] = &model.SafeZone{
			ID:   model.SafeZoneID(zone.ID),
			Name: zone.Name,
			Location: model.Location{
				Lat:     zone.Lat,
				Lng:     zone.Lng,
				Address: zone.Address,
			},
			Capacity:  zone.Capacity,
			Occupancy: zone.Occupancy,
			Resources: append([]string{}, zone.Resources...),
			Status:    status,
		}
	}
	return zones
}
