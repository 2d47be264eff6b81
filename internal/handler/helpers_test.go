// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/session"
	"github.com/olegiv/folio/internal/testutil"
	"github.com/olegiv/folio/web"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "correct-horse"
	testSiteURL  = "https://example.com"
)

type testEnv struct {
	db       *sql.DB
	sm       *scs.SessionManager
	renderer *render.Renderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	require.NoError(t, i18n.Init(nil))

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	testutil.SeedAdmin(t, db, testEmail, testPassword)

	sm := session.New(db, true)

	templates, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)

	renderer, err := render.New(render.Config{
		TemplatesFS:    templates,
		SessionManager: sm,
		IsDev:          true,
	})
	require.NoError(t, err)

	return &testEnv{db: db, sm: sm, renderer: renderer}
}

// router wraps the routes registered by fn with the language and session
// middleware, the way the server mounts them.
func (e *testEnv) router(fn func(r chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Language)
	r.Use(e.sm.LoadAndSave)
	fn(r)
	return r
}

// client replays the session cookie between requests.
type client struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newClient(t *testing.T, h http.Handler) *client {
	return &client{t: t, handler: h}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(HeaderContentType, "application/x-www-form-urlencoded")
	return c.do(req)
}

// follow requests the Location of a redirect response.
func (c *client) follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	c.t.Helper()
	require.Equal(c.t, http.StatusSeeOther, w.Code, "expected redirect, body: %s", w.Body.String())
	return c.get(w.Header().Get("Location"))
}
