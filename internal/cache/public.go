// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/olegiv/folio/internal/metrics"
)

// publicPrefix namespaces generated public output.
const publicPrefix = "public:"

// Public keys.
const (
	KeySitemap = "sitemap.xml"
)

// Public is a read-through cache of generated public output. Admin writes
// that change what visitors see call Invalidate.
type Public struct {
	cache Cache
}

// NewPublic wraps c.
func NewPublic(c Cache) *Public {
	return &Public{cache: c}
}

// Bytes returns the cached value of key or builds, stores and returns it.
// Cache failures are logged and never fail the request.
func (p *Public) Bytes(ctx context.Context, key string, build func(context.Context) ([]byte, error)) ([]byte, error) {
	if p == nil {
		return build(ctx)
	}

	data, err := p.cache.Get(ctx, publicPrefix+key)
	if err == nil {
		metrics.ObserveCache(key, true)
		return data, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		slog.Warn("cache read failed", "key", key, "error", err)
	}
	metrics.ObserveCache(key, false)

	data, err = build(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Set(ctx, publicPrefix+key, data, 0); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
	return data, nil
}

// Invalidate drops all cached public output.
func (p *Public) Invalidate(ctx context.Context) {
	if p == nil {
		return
	}
	if err := p.cache.DeleteByPrefix(ctx, publicPrefix); err != nil {
		slog.Warn("cache invalidation failed", "error", err)
	}
}

// Stats returns the statistics of the underlying cache.
func (p *Public) Stats() Stats {
	return p.cache.Stats()
}
