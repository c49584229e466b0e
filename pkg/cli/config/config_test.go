package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MohitGedela/GeoShield/pkg/cli/config"
	"github.com/MohitGedela/GeoShield/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid safe zones",
			content: `
[[safe_zone]]
id = "central-high"
name = "Central High School"
address = "100 School Rd"
lat = 35.68
lng = 139.76
capacity = 500
resources = ["water", "cots"]

[[safe_zone]]
id = "community_center"
name = "Community Center"
capacity = 200
occupancy = 20
status = "full"
`,
		},
		{
			name:    "empty file",
			content: ``,
		},
		{
			name: "duplicate id",
			content: `
[[safe_zone]]
id = "gym"
name = "Gym"

[[safe_zone]]
id = "gym"
name = "Other Gym"
`,
			wantErr: config.ErrDuplicateSafeZone,
		},
		{
			name: "invalid id",
			content: `
[[safe_zone]]
id = "Bad ID"
name = "Gym"
`,
			wantErr: config.ErrInvalidSafeZoneID,
		},
		{
			name: "missing name",
			content: `
[[safe_zone]]
id = "gym"
`,
			wantErr: config.ErrMissingName,
		},
		{
			name: "negative capacity",
			content: `
[[safe_zone]]
id = "gym"
name = "Gym"
capacity = -1
`,
			wantErr: config.ErrNegativeCapacity,
		},
		{
			name: "latitude out of range",
			content: `
[[safe_zone]]
id = "gym"
name = "Gym"
lat = 91.0
`,
			wantErr: config.ErrInvalidCoordinates,
		},
		{
			name:    "malformed toml",
			content: `[[safe_zone`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadAppConfiguration(writeConfig(t, tt.content))
			if tt.wantErr != nil {
				gt.Error(t, err).Is(tt.wantErr)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, cfg).NotNil()
		})
	}
}

func TestLoadAppConfiguration_NotFound(t *testing.T) {
	_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}

func TestAppConfig_ToSafeZones(t *testing.T) {
	cfg, err := config.LoadAppConfiguration(writeConfig(t, `
[[safe_zone]]
id = "central-high"
name = "Central High School"
address = "100 School Rd"
lat = 35.68
lng = 139.76
capacity = 500
occupancy = 12
resources = ["water"]
`))
	gt.NoError(t, err).Required()

	zones := cfg.ToSafeZones()
	gt.A(t, zones).Length(1).Required()
	gt.Value(t, zones[0].ID).Equal(model.SafeZoneID("central-high"))
	gt.Value(t, zones[0].Location.Address).Equal("100 School Rd")
	gt.Value(t, zones[0].Capacity).Equal(500)
	gt.Value(t, zones[0].Occupancy).Equal(12)
	gt.Value(t, zones[0].Status).Equal("open")
	gt.Value(t, zones[0].Resources).Equal([]string{"water"})
}

func TestApp_ConfigureWithoutPath(t *testing.T) {
	var app config.App
	cfg, err := app.Configure()
	gt.NoError(t, err).Required()
	gt.A(t, cfg.SafeZones).Length(0)
}
