// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics provides Prometheus metrics for the HTTP layer, logins,
// content writes and cache lookups.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "folio"

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// LoginAttempts counts admin logins by result: success, failure, locked or throttled.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Total number of admin login attempts by result",
		},
		[]string{"result"},
	)

	// ContentWrites counts admin mutations per resource.
	ContentWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "writes_total",
			Help:      "Total number of admin writes by resource, operation and result",
		},
		[]string{"resource", "operation", "result"},
	)

	// CacheLookups counts public cache lookups by key and result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of public cache lookups by key and result",
		},
		[]string{"key", "result"},
	)
)

// Login results.
const (
	LoginSuccess   = "success"
	LoginFailure   = "failure"
	LoginLocked    = "locked"
	LoginThrottled = "throttled"
)

// ObserveLogin records a login attempt.
func ObserveLogin(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}

// ObserveWrite records an admin write. A nil err counts as "ok".
func ObserveWrite(resource, operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ContentWrites.WithLabelValues(resource, operation, result).Inc()
}

// ObserveCache records a cache lookup.
func ObserveCache(key string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(key, result).Inc()
}

// RegisterDB exposes connection pool statistics for db.
func RegisterDB(db *sql.DB) error {
	return prometheus.Register(collectors.NewDBStatsCollector(db, namespace))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
