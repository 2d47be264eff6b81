// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/service"
)

func newDashboardClient(t *testing.T, env *testEnv, guide fstest.MapFS) *client {
	t.Helper()
	h := NewAdminHandler(env.db, env.renderer, guide)
	return newClient(t, env.router(func(r chi.Router) {
		r.Get(RouteAdmin, h.Dashboard)
	}))
}

func TestDashboardStatsAndEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	createPost(t, env, model.BlogPostFields{TitleEN: "One"})
	createPost(t, env, model.BlogPostFields{TitleEN: "Two"})
	require.NoError(t, service.NewEventService(env.db).LogContentEvent(ctx, "Saved blog", nil))

	w := newDashboardClient(t, env, nil).get("/admin")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<strong>2</strong> Blog posts")
	assert.Contains(t, body, "Saved blog")
}

func TestDashboardGuideLanguage(t *testing.T) {
	env := newTestEnv(t)
	guide := fstest.MapFS{
		"en.md": {Data: []byte("# English guide")},
		"vn.md": {Data: []byte("# Hướng dẫn")},
	}
	c := newDashboardClient(t, env, guide)

	assert.Contains(t, c.get("/admin").Body.String(), "<h1>English guide</h1>")
	assert.Contains(t, c.get("/admin?lang=vn").Body.String(), "<h1>Hướng dẫn</h1>")
}

func TestDashboardGuideFallsBackToDefault(t *testing.T) {
	env := newTestEnv(t)
	guide := fstest.MapFS{"en.md": {Data: []byte("# English guide")}}

	w := newDashboardClient(t, env, guide).get("/admin?lang=vn")

	assert.Contains(t, w.Body.String(), "<h1>English guide</h1>")
}
