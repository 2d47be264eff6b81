// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/service"
)

func newContentClient(t *testing.T, env *testEnv) *client {
	t.Helper()
	h := NewContentHandler(env.db, env.renderer)
	return newClient(t, env.router(func(r chi.Router) {
		r.Get(redirectAdminContent, h.Edit)
		r.Post(redirectAdminContent, h.Save)
	}))
}

func TestBuildContentSections(t *testing.T) {
	sections := buildContentSections([]model.ContentValue{
		{Key: model.ContentAboutTitle, ValueEN: "About me", ValueVN: "Về tôi"},
	})

	require.Len(t, sections, len(model.ContentSections))
	assert.Equal(t, "hero", sections[0].Name)

	var found bool
	for _, s := range sections {
		for _, f := range s.Fields {
			if f.Key == model.ContentAboutTitle {
				found = true
				assert.Equal(t, "about", s.Name)
				assert.Equal(t, "About me", f.ValueEN)
				assert.Equal(t, "Về tôi", f.ValueVN)
			}
		}
	}
	assert.True(t, found)
}

func TestContentEditShowsEverySlot(t *testing.T) {
	env := newTestEnv(t)

	w := newContentClient(t, env).get("/admin/content")

	require.Equal(t, http.StatusOK, w.Code)
	for _, slot := range model.ContentSlots {
		assert.Contains(t, w.Body.String(), `name="en_`+slot.Key+`"`)
		assert.Contains(t, w.Body.String(), `name="vn_`+slot.Key+`"`)
	}
}

func TestContentSave(t *testing.T) {
	env := newTestEnv(t)
	c := newContentClient(t, env)

	w := c.post("/admin/content?lang=vn", url.Values{
		"en_" + model.ContentContactEmail: {"me@example.com"},
		"vn_" + model.ContentContactEmail: {"toi@example.com"},
		"en_" + model.ContentAboutTitle:   {"About"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/content?lang=vn", w.Header().Get("Location"))

	page := c.follow(w)
	assert.Contains(t, page.Body.String(), `value="toi@example.com"`)

	rows, err := service.NewContentService(env.db).Map(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", rows[model.ContentContactEmail].ValueEn.String)
	assert.Equal(t, "toi@example.com", rows[model.ContentContactEmail].ValueVn.String)
	assert.Equal(t, "About", rows[model.ContentAboutTitle].ValueEn.String)
}
