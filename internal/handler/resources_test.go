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
	"github.com/olegiv/folio/internal/store"
)

func newAdminClient(t *testing.T, env *testEnv) *client {
	t.Helper()
	h := env.router(func(r chi.Router) {
		r.Route(RouteAdmin, func(r chi.Router) {
			NewExperiencesHandler(env.db, env.renderer).Routes(r)
			NewEducationHandler(env.db, env.renderer).Routes(r)
			NewBlogAdminHandler(env.db, env.renderer).Routes(r)
			NewProductsHandler(env.db, env.renderer).Routes(r)
		})
	})
	return newClient(t, h)
}

func createPost(t *testing.T, env *testEnv, fields model.BlogPostFields) store.BlogPost {
	t.Helper()
	post, err := service.NewBlogService(env.db).Upsert(context.Background(), model.New(fields))
	require.NoError(t, err)
	return post
}

func TestResourceListEmpty(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.get("/admin/blog")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing here yet.")
	assert.NotContains(t, w.Body.String(), `<dialog class="editor" open>`)
}

func TestResourceNewOpensDialog(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.get("/admin/products?new=1")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<dialog class="editor" open>`)
	assert.Contains(t, body, `name="id" value=""`)
}

func TestResourceSaveCreates(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/blog/save", url.Values{"title_en": {"Hello World"}})

	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/admin/blog?lang=en", w.Header().Get("Location"))

	page := c.follow(w)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Blog post saved")
	assert.Contains(t, page.Body.String(), "<code>hello-world</code>")

	posts, err := service.NewBlogService(env.db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.False(t, posts[0].Published)
}

func TestResourceSaveKeepsLanguage(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/experiences/save?lang=vn", url.Values{
		"role_en": {"Engineer"},
		"company": {"Acme"},
		"period":  {"2020 - 2024"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/admin/experiences?lang=vn", w.Header().Get("Location"))
}

func TestResourceSaveValidationError(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/experiences/save", url.Values{"company": {"Acme"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<dialog class="editor" open>`)
	assert.Contains(t, body, "Please correct the highlighted fields")
	assert.Contains(t, body, `value="Acme"`, "submitted values are kept")

	rows, err := service.NewExperienceService(env.db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestResourceSaveBadNumber(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/products/save", url.Values{
		"name_en":      {"Course"},
		"price":        {"cheap"},
		"currency":     {model.CurrencyVND},
		"product_type": {model.ProductTypeCourse},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "must be a number")
}

func TestResourceSaveSlugTaken(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)
	createPost(t, env, model.BlogPostFields{TitleEN: "First", Slug: "taken"})

	w := c.post("/admin/blog/save", url.Values{"title_en": {"Second"}, "slug": {"taken"}})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "This slug is already used by another record")
}

func TestResourceEditAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)
	post := createPost(t, env, model.BlogPostFields{TitleEN: "Hello World"})

	w := c.get("/admin/blog?edit=" + post.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Hello World"`)
	assert.Contains(t, w.Body.String(), `name="id" value="`+post.ID+`"`)

	w = c.post("/admin/blog/save", url.Values{
		"id":       {post.ID},
		"title_en": {"Hello Again"},
		"slug":     {post.Slug},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	got, err := service.NewBlogService(env.db).Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello Again", got.TitleEn.String)
	assert.Equal(t, "hello-world", got.Slug)
}

func TestResourceEditUnknownID(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.get("/admin/blog?edit=missing")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found")
	assert.NotContains(t, w.Body.String(), `<dialog class="editor" open>`)
}

func TestResourceUpdateMissingRecord(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/blog/save", url.Values{
		"id":       {"missing"},
		"title_en": {"Ghost"},
		"slug":     {"ghost"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Record not found")
}

func TestResourceDeleteConfirmAndDelete(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)
	post := createPost(t, env, model.BlogPostFields{TitleEN: "Doomed"})

	w := c.get("/admin/blog?delete=" + post.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<dialog class="confirm" open>`)
	assert.Contains(t, w.Body.String(), "/admin/blog/"+post.ID+"/delete")

	w = c.post("/admin/blog/"+post.ID+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	page := c.follow(w)
	assert.Contains(t, page.Body.String(), "Blog post deleted")

	_, err := service.NewBlogService(env.db).Get(context.Background(), post.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestResourceToggle(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)
	post := createPost(t, env, model.BlogPostFields{TitleEN: "Draft"})

	w := c.post("/admin/blog/"+post.ID+"/toggle", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, c.follow(w).Body.String(), "Blog post published")

	got, err := service.NewBlogService(env.db).Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.True(t, got.PublishedAt.Valid)

	w = c.post("/admin/blog/"+post.ID+"/toggle", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, c.follow(w).Body.String(), "Blog post unpublished")
}

func TestResourceToggleUnknownID(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/products/missing/toggle", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, c.follow(w).Body.String(), "Record not found")
}

func TestResourceWithoutPublishHasNoToggle(t *testing.T) {
	env := newTestEnv(t)
	c := newAdminClient(t, env)

	w := c.post("/admin/experiences/some-id/toggle", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
