package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	InstanceName string
	LogLevel     string

	SessionSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("BACKEND_PORT", "8080")
	v.SetDefault("READ_TIMEOUT", 15*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("INSTANCE_NAME", "lumen-site-1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_SECRET", "lumen-dev-session-secret")
	v.SetDefault("GOOGLE_CALLBACK_URL", "http://localhost:8080/auth/google/callback")

	return Config{
		Port:         v.GetString("BACKEND_PORT"),
		ReadTimeout:  v.GetDuration("READ_TIMEOUT"),
		WriteTimeout: v.GetDuration("WRITE_TIMEOUT"),
		IdleTimeout:  v.GetDuration("IDLE_TIMEOUT"),
		InstanceName: v.GetString("INSTANCE_NAME"),
		LogLevel:     v.GetString("LOG_LEVEL"),

		SessionSecret: v.GetString("SESSION_SECRET"),

		GoogleClientID:     v.GetString("GOOGLE_KEY"),
		GoogleClientSecret: v.GetString("GOOGLE_SECRET"),
		GoogleCallbackURL:  v.GetString("GOOGLE_CALLBACK_URL"),
	}
}
