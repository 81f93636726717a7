package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"dashboard/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DASH_ADDR", ":9999")
	t.Setenv("DASH_DATA_DIR", "/tmp/dash")
	t.Setenv("DASH_LOG_LEVEL", "DEBUG")
	t.Setenv("DASH_ROOT_LABEL", "Documentos")
	t.Setenv("DASH_SESSION_TTL", "45m")
	t.Setenv("DASH_SWEEP_INTERVAL", "1m")
	t.Setenv("DASH_NOTIFICATION_LIMIT", "10")
	t.Setenv("DASH_CHECK_INVARIANTS", "true")
	t.Setenv("DASH_SEED_DEMO", "1")
	t.Setenv("DASH_ENABLE_SWAGGER", "true")
	t.Setenv("DASH_RATE_LIMIT", "2.5")
	t.Setenv("DASH_NODE_ID", "7")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/dash", cfg.DataDir)
	require.Equal(t, filepath.Join("/tmp/dash", "dashboard.db"), cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "Documentos", cfg.RootLabel)
	require.Equal(t, 45*time.Minute, cfg.SessionTTL)
	require.Equal(t, time.Minute, cfg.SweepInterval)
	require.Equal(t, 10, cfg.NotificationLimit)
	require.True(t, cfg.CheckInvariants)
	require.True(t, cfg.SeedDemo)
	require.True(t, cfg.EnableSwagger)
	require.Equal(t, 2.5, cfg.RateLimit)
	require.Equal(t, int64(7), cfg.NodeID)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DASH_ADDR", "DASH_DATA_DIR", "DASH_DB_PATH", "DASH_LOG_LEVEL", "DASH_ROOT_LABEL",
		"DASH_SESSION_TTL", "DASH_SWEEP_INTERVAL", "DASH_NOTIFICATION_LIMIT", "DASH_CHECK_INVARIANTS",
		"DASH_SEED_DEMO", "DASH_ENABLE_SWAGGER", "DASH_RATE_LIMIT", "DASH_NODE_ID",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, filepath.Join("data", "dashboard.db"), cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "Documents", cfg.RootLabel)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, 5*time.Minute, cfg.SweepInterval)
	require.Equal(t, 50, cfg.NotificationLimit)
	require.False(t, cfg.CheckInvariants)
	require.False(t, cfg.SeedDemo)
	require.False(t, cfg.EnableSwagger)
	require.Zero(t, cfg.RateLimit)
	require.Zero(t, cfg.NodeID)
}

func TestLoad_ExplicitDBPathAndBadValues(t *testing.T) {
	t.Setenv("DASH_DB_PATH", "/var/lib/dash/../dash/docs.db")
	t.Setenv("DASH_SESSION_TTL", "soon")
	t.Setenv("DASH_RATE_LIMIT", "-1")
	t.Setenv("DASH_SEED_DEMO", "maybe")

	cfg := config.Load()
	require.Equal(t, "/var/lib/dash/docs.db", cfg.DBPath)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Zero(t, cfg.RateLimit)
	require.False(t, cfg.SeedDemo)
}
