// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Create sessions table required by sqlite3store
	_, err = db.Exec(`
		CREATE TABLE sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX sessions_expiry_idx ON sessions(expiry);
	`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newManager(t *testing.T, isDev bool) *scs.SessionManager {
	t.Helper()
	return New(setupTestDB(t), isDev)
}

func TestNew_Settings(t *testing.T) {
	tests := []struct {
		name       string
		isDev      bool
		cookieName string
		secure     bool
	}{
		{"development", true, DevCookieName, false},
		{"production", false, ProdCookieName, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := newManager(t, tt.isDev)

			assert.NotNil(t, sm.Store)
			assert.Equal(t, tt.cookieName, sm.Cookie.Name)
			assert.Equal(t, tt.secure, sm.Cookie.Secure)
			assert.True(t, sm.Cookie.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, sm.Cookie.SameSite)
			assert.Equal(t, "/", sm.Cookie.Path)
			assert.Equal(t, Lifetime, sm.Lifetime)
			assert.Equal(t, IdleTimeout, sm.IdleTimeout)
		})
	}
}

// roundTrip serves h behind sm.LoadAndSave, carrying the session cookie.
func roundTrip(t *testing.T, sm *scs.SessionManager, cookie *http.Cookie, h http.HandlerFunc) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	sm.LoadAndSave(h).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == sm.Cookie.Name {
			return c
		}
	}
	return cookie
}

func TestStartCurrentEnd(t *testing.T) {
	sm := newManager(t, true)
	want := Identity{UserID: "u-1", Email: "admin@example.com", Role: "admin"}

	var anonToken string
	cookie := roundTrip(t, sm, nil, func(w http.ResponseWriter, r *http.Request) {
		_, ok := Current(r.Context(), sm)
		assert.False(t, ok)
		sm.Put(r.Context(), KeyFlash, "hello")
	})
	require.NotNil(t, cookie)
	anonToken = cookie.Value

	cookie = roundTrip(t, sm, cookie, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, Start(r.Context(), sm, want))
	})
	assert.NotEqual(t, anonToken, cookie.Value, "token must be renewed on start")

	cookie = roundTrip(t, sm, cookie, func(w http.ResponseWriter, r *http.Request) {
		got, ok := Current(r.Context(), sm)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		require.NoError(t, End(r.Context(), sm))
	})

	roundTrip(t, sm, cookie, func(w http.ResponseWriter, r *http.Request) {
		_, ok := Current(r.Context(), sm)
		assert.False(t, ok)
	})
}
