// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the admin session manager backed by the
// sessions table and stores the signed-in admin in it.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys.
const (
	KeyUserID    = "user_id"
	KeyUserEmail = "user_email"
	KeyRole      = "role"
	KeyFlash     = "flash"
	KeyFlashType = "flash_type"
)

// Cookie names. The production name uses the __Host- prefix, which
// requires Secure, no Domain and Path "/".
const (
	DevCookieName  = "folio_session"
	ProdCookieName = "__Host-folio_session"
)

// Admin sessions expire after Lifetime, or earlier after IdleTimeout
// without a request.
const (
	Lifetime    = 24 * time.Hour
	IdleTimeout = 2 * time.Hour
)

// New creates a session manager storing sessions in db.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)

	sm.Lifetime = Lifetime
	sm.IdleTimeout = IdleTimeout
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Name = ProdCookieName
	sm.Cookie.Secure = true

	if isDev {
		sm.Cookie.Name = DevCookieName
		sm.Cookie.Secure = false
	}

	return sm
}

// Identity is the admin a session belongs to. Role is kept for display.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Start renews the session token and binds the session to id.
func Start(ctx context.Context, sm *scs.SessionManager, id Identity) error {
	if err := sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	sm.Put(ctx, KeyUserID, id.UserID)
	sm.Put(ctx, KeyUserEmail, id.Email)
	sm.Put(ctx, KeyRole, id.Role)
	return nil
}

// Current returns the identity bound to the session, if any.
func Current(ctx context.Context, sm *scs.SessionManager) (Identity, bool) {
	id := Identity{
		UserID: sm.GetString(ctx, KeyUserID),
		Email:  sm.GetString(ctx, KeyUserEmail),
		Role:   sm.GetString(ctx, KeyRole),
	}
	return id, id.UserID != ""
}

// End destroys the session.
func End(ctx context.Context, sm *scs.SessionManager) error {
	return sm.Destroy(ctx)
}
