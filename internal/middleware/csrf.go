// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net"
	"net/http"

	"filippo.io/csrf/gorilla"

	"github.com/olegiv/folio/internal/i18n"
)

// CSRFConfig holds configuration for CSRF protection.
// filippo.io/csrf/gorilla checks Fetch metadata and Origin headers, so the
// admin forms carry no token.
type CSRFConfig struct {
	// AuthKey is the 32-byte key the gorilla-compatible API requires.
	AuthKey []byte

	// ErrorHandler replaces the localized 403 response.
	ErrorHandler http.Handler

	// TrustedOrigins lists host:port values allowed to post cross-origin.
	TrustedOrigins []string
}

// DefaultCSRFConfig returns a CSRFConfig for the given key. In development
// the listener at listenAddr is trusted under its localhost and loopback
// names as well.
func DefaultCSRFConfig(authKey []byte, isDev bool, listenAddr string) CSRFConfig {
	cfg := CSRFConfig{AuthKey: authKey}
	if !isDev || listenAddr == "" {
		return cfg
	}

	cfg.TrustedOrigins = []string{listenAddr}
	if host, port, err := net.SplitHostPort(listenAddr); err == nil {
		for _, alias := range []string{"localhost", "127.0.0.1"} {
			if alias != host {
				cfg.TrustedOrigins = append(cfg.TrustedOrigins, net.JoinHostPort(alias, port))
			}
		}
	}
	return cfg
}

// CSRF returns a middleware that rejects cross-site state-changing requests.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	errorHandler := cfg.ErrorHandler
	if errorHandler == nil {
		errorHandler = http.HandlerFunc(csrfRejected)
	}

	opts := []csrf.Option{csrf.ErrorHandler(errorHandler)}
	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}

	return csrf.Protect(cfg.AuthKey, opts...)
}

func csrfRejected(w http.ResponseWriter, r *http.Request) {
	reason := "unknown"
	if err := csrf.FailureReason(r); err != nil {
		reason = err.Error()
	}
	slog.Warn("cross-site request rejected",
		"category", "auth",
		"reason", reason,
		"method", r.Method,
		"path", r.URL.Path,
		"origin", r.Header.Get("Origin"),
		"sec_fetch_site", r.Header.Get("Sec-Fetch-Site"),
	)
	http.Error(w, i18n.T(GetLang(r.Context()).String(), "error.csrf"), http.StatusForbidden)
}
