// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application settings from FOLIO_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"FOLIO_DB_PATH" envDefault:"./data/folio.db"`
	SessionSecret string `env:"FOLIO_SESSION_SECRET,required"`
	ServerHost    string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"FOLIO_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel      string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// SiteURL is the public base URL used in the sitemap, robots.txt and
	// canonical links. See BaseURL.
	SiteURL string `env:"FOLIO_SITE_URL"`

	// Admin account created on first start
	AdminEmail    string `env:"FOLIO_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"FOLIO_ADMIN_PASSWORD" envDefault:"changeme"`
	AdminName     string `env:"FOLIO_ADMIN_NAME" envDefault:"Administrator"`

	// Login protection
	LoginRateLimit   float64       `env:"FOLIO_LOGIN_RATE_LIMIT" envDefault:"0.5"`
	LoginBurst       int           `env:"FOLIO_LOGIN_BURST" envDefault:"5"`
	LoginMaxAttempts int           `env:"FOLIO_LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginLockout     time.Duration `env:"FOLIO_LOGIN_LOCKOUT" envDefault:"15m"`

	// Public JSON API rate limit per client IP
	APIRateLimit float64 `env:"FOLIO_API_RATE_LIMIT" envDefault:"10"`
	APIBurst     int     `env:"FOLIO_API_BURST" envDefault:"20"`

	MetricsEnabled bool          `env:"FOLIO_METRICS_ENABLED" envDefault:"true"`
	EventRetention time.Duration `env:"FOLIO_EVENT_RETENTION" envDefault:"720h"`
	// EventCleanupSchedule is the cron spec of the event log cleanup job.
	EventCleanupSchedule string `env:"FOLIO_EVENT_CLEANUP_SCHEDULE" envDefault:"@daily"`

	// Generated public output (the sitemap) is cached only when RedisURL or
	// CacheTTL is set. RedisURL shares the cache between instances.
	RedisURL string        `env:"FOLIO_REDIS_URL"`
	CacheTTL time.Duration `env:"FOLIO_CACHE_TTL" envDefault:"0s"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// CacheEnabled reports whether generated public output is cached.
func (c Config) CacheEnabled() bool {
	return c.RedisURL != "" || c.CacheTTL > 0
}

// BaseURL returns SiteURL without a trailing slash, or the local listener
// address when SiteURL is unset.
func (c Config) BaseURL() string {
	if c.SiteURL != "" {
		return strings.TrimSuffix(c.SiteURL, "/")
	}
	return "http://" + c.ServerAddr()
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("FOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("FOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("FOLIO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("FOLIO_ADMIN_EMAIL must not be empty")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
