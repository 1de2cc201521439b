package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 25.0, cfg.Calculation.ExchangeRate)
	assert.Equal(t, "static", cfg.Prices.Source)
	assert.Empty(t, cfg.Tariffs.RateMap)
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	// No indentation at the top level to keep the YAML valid
	path := writeConfig(t, "spot.yaml", `server:
  host: "127.0.0.1"
  port: "9000"
  shutdown_timeout: 3s
calculation:
  exchange_rate: 24.5
prices:
  source: ini
  path: /etc/spot/prices.ini
tariffs:
  rate_map: /etc/spot/rates.xlsx
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 24.5, cfg.Calculation.ExchangeRate)
	assert.Equal(t, "ini", cfg.Prices.Source)
	assert.Equal(t, "/etc/spot/prices.ini", cfg.Prices.Path)
	assert.Equal(t, "/etc/spot/rates.xlsx", cfg.Tariffs.RateMap)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SPOT_ATLAS_SERVER_PORT", "7070")
	t.Setenv("SPOT_ATLAS_CALCULATION_EXCHANGE_RATE", "26")

	path := writeConfig(t, "spot.yaml", "server:\n  port: \"9000\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 26.0, cfg.Calculation.ExchangeRate)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "invalid yaml",
			content: "server: port: bad: value",
			errText: "failed to read config file",
		},
		{
			name:    "non-positive exchange rate",
			content: "calculation:\n  exchange_rate: 0\n",
			errText: "calculation.exchange_rate must be positive",
		},
		{
			name:    "file source without path",
			content: "prices:\n  source: xlsx\n",
			errText: "prices.path is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "spot.yaml", tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
