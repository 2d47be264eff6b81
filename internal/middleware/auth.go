// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// request language and request context handling.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/session"
	"github.com/olegiv/folio/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for user data.
const (
	ContextKeyUser        ContextKey = "user"
	ContextKeyRole        ContextKey = "role"
	ContextKeyRequestPath ContextKey = "request_path"
)

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/auth"

// Auth creates middleware that requires an active admin session.
// Requests without one are redirected to the login page.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := session.Current(r.Context(), sm); !ok {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadUser creates middleware that loads the current user and the role
// stored at login into the request context. This should be used after Auth.
func LoadUser(sm *scs.SessionManager, users *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := session.Current(r.Context(), sm)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.Get(r.Context(), id.UserID)
			if err != nil {
				if !errors.Is(err, service.ErrNotFound) {
					slog.Error("failed to load session user", "error", err, "user_id", id.UserID)
				}
				// Stale session: drop it and start over
				_ = session.End(r.Context(), sm)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			ctx = context.WithValue(ctx, ContextKeyRole, id.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the current user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *store.User {
	user, ok := r.Context().Value(ContextKeyUser).(store.User)
	if !ok {
		return nil
	}
	return &user
}

// GetUserEmail returns the current user's email from context, or empty string if not found.
func GetUserEmail(r *http.Request) string {
	if user := GetUser(r); user != nil {
		return user.Email
	}
	return ""
}

// GetRole returns the role recorded in the session at login.
func GetRole(r *http.Request) string {
	role, _ := r.Context().Value(ContextKeyRole).(string)
	return role
}

// RequestPath creates middleware that stores the request path in the context.
// The event log handler stores it as the url of persisted records.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath retrieves the request path from the context.
func GetRequestPath(ctx context.Context) string {
	path, ok := ctx.Value(ContextKeyRequestPath).(string)
	if !ok {
		return ""
	}
	return path
}
