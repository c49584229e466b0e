package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/MohitGedela/GeoShield/pkg/cli"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geoshield.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestRun_ValidateCommand_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
[[safe_zone]]
id = "central-high"
name = "Central High School"
address = "100 Main St"
lat = 29.76
lng = -95.36
capacity = 300
resources = ["water", "cots"]

[[safe_zone]]
id = "memorial-church"
name = "Memorial Church"
lat = 29.74
lng = -95.40
capacity = 120
status = "full"
`)

	err := cli.Run(context.Background(), []string{"geoshield", "validate", "--config", configPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidConfig(t *testing.T) {
	testCases := map[string]string{
		"bad id": `
[[safe_zone]]
id = "Central High"
name = "Central High School"
`,
		"missing name": `
[[safe_zone]]
id = "central-high"
`,
		"negative capacity": `
[[safe_zone]]
id = "central-high"
name = "Central High School"
capacity = -1
`,
		"duplicate id": `
[[safe_zone]]
id = "central-high"
name = "Central High School"

[[safe_zone]]
id = "central-high"
name = "Central High Annex"
`,
		"broken toml": `[[safe_zone]`,
	}

	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			configPath := writeConfig(t, content)
			err := cli.Run(context.Background(), []string{"geoshield", "validate", "--config", configPath}, "test")
			gt.Value(t, err).NotNil()
		})
	}
}

func TestRun_ValidateCommand_MissingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nonexistent.toml")

	err := cli.Run(context.Background(), []string{"geoshield", "validate", "--config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_StoreCheckWithMemory(t *testing.T) {
	configPath := writeConfig(t, `
[[safe_zone]]
id = "central-high"
name = "Central High School"
`)

	// empty in-memory store has nothing to violate
	err := cli.Run(context.Background(), []string{
		"geoshield", "validate",
		"--config", configPath,
		"--check-store",
		"--repository-backend", "memory",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_UnknownBackend(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"geoshield", "validate",
		"--check-store",
		"--repository-backend", "postgres",
	}, "test")
	gt.Value(t, err).NotNil()
}
