package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "lumen-site-1", cfg.InstanceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Empty(t, cfg.GoogleClientID)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BACKEND_PORT", "9090")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("INSTANCE_NAME", "lumen-site-7")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GOOGLE_KEY", "client-id")
	t.Setenv("GOOGLE_SECRET", "client-secret")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "lumen-site-7", cfg.InstanceName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
	assert.Equal(t, "client-secret", cfg.GoogleClientSecret)
}
