package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, populated from environment
// variables.
type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
	Env         string `envconfig:"NODE_ENV" default:"development"`

	// DatabaseURL is optional: when empty (or the database is unreachable)
	// the server runs against the in-memory user store only.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	JWTSecretKey       string `envconfig:"JWT_SECRET_KEY"`
	JWTExpirationHours int64  `envconfig:"JWT_EXPIRATION_HOURS" default:"24"`

	// InitialAdminEmail promotes a registration with this email to ADMIN.
	InitialAdminEmail string `envconfig:"INITIAL_ADMIN_EMAIL"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
