package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PURGE_SCHEDULE", "0 3 * * *")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "0 3 * * *", cfg.PurgeSchedule)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 365*24*time.Hour, cfg.SignedURLTTL)
	assert.Equal(t, "offers-image", cfg.StorageBucket)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "UTC", Config{Timezone: "UTC"}.Location().String())
	assert.Equal(t, time.Local, Config{Timezone: "Mars/Olympus"}.Location())
	assert.Equal(t, time.Local, Config{}.Location())
}
