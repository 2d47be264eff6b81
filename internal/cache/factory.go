// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"log/slog"
	"time"
)

// Config holds configuration for cache creation.
type Config struct {
	// RedisURL selects the Redis backend when set.
	RedisURL string
	// Prefix is the key prefix for Redis.
	Prefix          string
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

// New creates the cache described by cfg. When Redis is configured but
// unreachable the memory cache is used instead; the bool reports whether
// that fallback happened.
func New(cfg Config) (Cache, bool) {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}

	if cfg.RedisURL != "" {
		rc, err := NewRedisCache(RedisOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
		if err == nil {
			return rc, false
		}
		slog.Warn("redis unavailable, using memory cache", "error", err)
		return NewMemoryCache(cfg.DefaultTTL, cfg.CleanupInterval), true
	}

	return NewMemoryCache(cfg.DefaultTTL, cfg.CleanupInterval), false
}
