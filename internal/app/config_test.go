package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:5173")
	require.Equal(t, "./data", cfg.Storage.DataDir)
	require.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	require.Equal(t, 15*time.Second, cfg.AI.Timeout)
	require.True(t, cfg.Monitoring.Prometheus.Enabled)
	require.Equal(t, "/metrics", cfg.Monitoring.Prometheus.Endpoint)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("HIREWIRE_SERVER_PORT", "9100")
	t.Setenv("HIREWIRE_STORAGE_DATA_DIR", "/tmp/hirewire-data")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "/tmp/hirewire-data", cfg.Storage.DataDir)
}
