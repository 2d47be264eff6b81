// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/folio.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/folio.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.AdminEmail != "admin@example.com" {
		t.Errorf("AdminEmail = %q, want %q", cfg.AdminEmail, "admin@example.com")
	}
	if cfg.LoginLockout != 15*time.Minute {
		t.Errorf("LoginLockout = %v, want 15m", cfg.LoginLockout)
	}
	if cfg.LoginMaxAttempts != 5 {
		t.Errorf("LoginMaxAttempts = %d, want 5", cfg.LoginMaxAttempts)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
	if cfg.EventRetention != 30*24*time.Hour {
		t.Errorf("EventRetention = %v, want 720h", cfg.EventRetention)
	}
	if cfg.EventCleanupSchedule != "@daily" {
		t.Errorf("EventCleanupSchedule = %q, want @daily", cfg.EventCleanupSchedule)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if cfg.CacheEnabled() {
		t.Error("CacheEnabled() = true, want false by default")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", testSecret)
	t.Setenv("FOLIO_DB_PATH", "/tmp/folio-test.db")
	t.Setenv("FOLIO_SERVER_HOST", "0.0.0.0")
	t.Setenv("FOLIO_SERVER_PORT", "3000")
	t.Setenv("FOLIO_ENV", "production")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")
	t.Setenv("FOLIO_SITE_URL", "https://example.vn")
	t.Setenv("FOLIO_ADMIN_EMAIL", "owner@example.vn")
	t.Setenv("FOLIO_LOGIN_LOCKOUT", "1h")
	t.Setenv("FOLIO_METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "/tmp/folio-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q", cfg.ServerAddr())
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() should be false in production")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if cfg.SiteURL != "https://example.vn" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.AdminEmail != "owner@example.vn" {
		t.Errorf("AdminEmail = %q", cfg.AdminEmail)
	}
	if cfg.LoginLockout != time.Hour {
		t.Errorf("LoginLockout = %v, want 1h", cfg.LoginLockout)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail without FOLIO_SESSION_SECRET")
	}
}

func TestLoad_SessionSecretTooShort(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", "short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail with a short secret")
	}
	if !strings.Contains(err.Error(), "at least 32 bytes") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_WeakSecretRejected(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", knownWeakSecrets[0])

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a known default secret")
	}
}

func TestLoad_EmptyAdminEmail(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", testSecret)
	t.Setenv("FOLIO_ADMIN_EMAIL", "")

	// envDefault only applies when the variable is unset
	if _, err := Load(); err == nil {
		t.Error("Load() should reject an empty admin email")
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (Config{LogLevel: tt.level}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfig_CacheEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"off by default", Config{}, false},
		{"memory with ttl", Config{CacheTTL: time.Minute}, true},
		{"redis", Config{RedisURL: "redis://localhost:6379/0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.CacheEnabled(); got != tt.want {
				t.Errorf("CacheEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"site url", Config{SiteURL: "https://example.com"}, "https://example.com"},
		{"trailing slash trimmed", Config{SiteURL: "https://example.com/"}, "https://example.com"},
		{"listener fallback", Config{ServerHost: "localhost", ServerPort: 8080}, "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	tests := []struct {
		secret string
		want   bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"abcdefABCDEFabcdefABCDEFabcdefAB", false},
		{"abcdefABCDEF0123456789abcdefABCD", true},
		{testSecret, true},
	}
	for _, tt := range tests {
		if got := hasMinimumEntropy(tt.secret); got != tt.want {
			t.Errorf("hasMinimumEntropy(%q) = %v, want %v", tt.secret, got, tt.want)
		}
	}
}
