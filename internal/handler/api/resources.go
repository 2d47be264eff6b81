// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/views"
)

// Routes registers the API routes. Mount it under /api/v1.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Status)
	r.Get("/experiences", h.ListExperiences)
	r.Get("/education", h.ListEducation)
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{slug}", h.GetPost)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)
	r.Get("/content", h.GetContent)
	r.NotFound(h.NotFound)
}

// ListExperiences handles GET /api/v1/experiences.
func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	rows, err := h.experiences.List(r.Context())
	if err != nil {
		slog.Error("api: failed to list experiences", "error", err)
		WriteInternalError(w, "Failed to retrieve experiences")
		return
	}
	data := views.Experiences(lang, rows)
	WriteSuccess(w, data, &Meta{Lang: lang.String(), Total: len(data)})
}

// ListEducation handles GET /api/v1/education.
func (h *Handler) ListEducation(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	rows, err := h.education.List(r.Context())
	if err != nil {
		slog.Error("api: failed to list education", "error", err)
		WriteInternalError(w, "Failed to retrieve education")
		return
	}
	data := views.EducationList(lang, rows)
	WriteSuccess(w, data, &Meta{Lang: lang.String(), Total: len(data)})
}

// ListPosts handles GET /api/v1/posts. Only published posts are listed.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	rows, err := h.blog.ListPublished(r.Context())
	if err != nil {
		slog.Error("api: failed to list posts", "error", err)
		WriteInternalError(w, "Failed to retrieve posts")
		return
	}
	data := views.Posts(lang, rows)
	WriteSuccess(w, data, &Meta{Lang: lang.String(), Total: len(data)})
}

// GetPost handles GET /api/v1/posts/{slug}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	row, err := h.blog.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, service.ErrNotFound) {
		WriteNotFound(w, "Post not found")
		return
	}
	if err != nil {
		slog.Error("api: failed to get post", "error", err)
		WriteInternalError(w, "Failed to retrieve post")
		return
	}
	WriteSuccess(w, views.NewPost(lang, row), &Meta{Lang: lang.String()})
}

// ListProducts handles GET /api/v1/products. Only published products are listed.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	rows, err := h.products.ListPublished(r.Context())
	if err != nil {
		slog.Error("api: failed to list products", "error", err)
		WriteInternalError(w, "Failed to retrieve products")
		return
	}
	data := views.Products(lang, rows)
	WriteSuccess(w, data, &Meta{Lang: lang.String(), Total: len(data)})
}

// GetProduct handles GET /api/v1/products/{slug}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	row, err := h.products.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, service.ErrNotFound) {
		WriteNotFound(w, "Product not found")
		return
	}
	if err != nil {
		slog.Error("api: failed to get product", "error", err)
		WriteInternalError(w, "Failed to retrieve product")
		return
	}
	WriteSuccess(w, views.NewProduct(lang, row), &Meta{Lang: lang.String()})
}

// GetContent handles GET /api/v1/content: every slot key with its value.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	lang, ok := requestLang(w, r)
	if !ok {
		return
	}
	rows, err := h.content.List(r.Context())
	if err != nil {
		slog.Error("api: failed to get content", "error", err)
		WriteInternalError(w, "Failed to retrieve content")
		return
	}
	WriteSuccess(w, views.NewContent(lang, rows), &Meta{Lang: lang.String()})
}
