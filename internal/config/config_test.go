package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "eduhub_db", cfg.DatabaseName)
	require.Equal(t, "mongodb://localhost:27017/", cfg.MongoURI)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_NAME", "eduhub_test")
	t.Setenv("PORT", "9001")
	t.Setenv("SMTP_PORT", "2525")

	cfg := LoadConfig()
	require.Equal(t, "eduhub_test", cfg.DatabaseName)
	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoadConfigBadSMTPPortFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := LoadConfig()
	require.Equal(t, 587, cfg.SMTP.Port)
}
