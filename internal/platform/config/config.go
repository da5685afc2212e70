// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when one exists; real environment variables
always win over the file.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the portfolio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./migrations"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE"   envDefault:"true"`

	// Key-Value store (Redis), used for login throttling
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Admin identity and token signing
	JWTSecret         string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer         string        `env:"JWT_ISSUER"          envDefault:"portfolio-api"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL"    envDefault:"60m"`
	AdminUsername     string        `env:"ADMIN_USERNAME"      envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH,required,notEmpty"`
	LoginMaxAttempts  int           `env:"LOGIN_MAX_ATTEMPTS"  envDefault:"5"`
	LoginLockout      time.Duration `env:"LOGIN_LOCKOUT"       envDefault:"15m"`

	// Content languages
	SupportedLanguages []string `env:"SUPPORTED_LANGUAGES" envSeparator:"," envDefault:"en,vi"`
	DefaultLanguage    string   `env:"DEFAULT_LANGUAGE"    envDefault:"vi"`

	// Media storage on local disk
	UploadDir   string `env:"UPLOAD_DIR"    envDefault:"./uploads"`
	MaxUploadMB int64  `env:"MAX_UPLOAD_MB" envDefault:"5"`

	// Cross-Origin Resource Sharing
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load reads an optional .env file, then parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current process environment into a [Config] without touching .env files.
func Parse() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.SupportedLanguages) == 0 {
		return errors.New("config: SUPPORTED_LANGUAGES must list at least one language")
	}
	if !slices.Contains(c.SupportedLanguages, c.DefaultLanguage) {
		return fmt.Errorf("config: DEFAULT_LANGUAGE %q is not in SUPPORTED_LANGUAGES", c.DefaultLanguage)
	}
	if c.MaxUploadMB <= 0 {
		return errors.New("config: MAX_UPLOAD_MB must be positive")
	}
	if c.LoginMaxAttempts <= 0 {
		return errors.New("config: LOGIN_MAX_ATTEMPTS must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the configured CORS origins.
func (c *Config) AllowedOrigins() []string {
	return c.CORSOrigins
}

// MaxUploadBytes converts the upload limit to bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// # Tool Configuration

// ToolConfig is the subset of settings the catalogctl admin tool needs.
// It leaves out the server-only secrets so migrations can run without them.
type ToolConfig struct {
	DatabaseURL        string   `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath      string   `env:"MIGRATION_PATH"      envDefault:"./migrations"`
	SupportedLanguages []string `env:"SUPPORTED_LANGUAGES" envSeparator:"," envDefault:"en,vi"`
	DefaultLanguage    string   `env:"DEFAULT_LANGUAGE"    envDefault:"vi"`
}

// LoadTool reads an optional .env file, then parses a [ToolConfig].
func LoadTool() (*ToolConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env file: %w", err)
	}

	cfg := &ToolConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}
