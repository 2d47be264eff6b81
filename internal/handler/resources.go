// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/olegiv/folio/internal/console"
	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/metrics"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/service"
)

// Resource describes one admin CRUD screen.
type Resource[R, F any] struct {
	// Segment is the route below /admin, e.g. "/blog".
	Segment string
	// Template is the page template, e.g. "admin/blog".
	Template string
	// Noun is the i18n key of the record name used in flash messages.
	Noun string
	// Service is the store side of the screen.
	Service console.Resource[R, F]
	// Parse builds the dialog fields from a submitted form.
	Parse func(*formReader) F
	// Label names a row in the delete confirmation.
	Label func(R) string
	// Published reports the publish flag of a row; nil for resources
	// without one.
	Published func(R) bool
	// OnWrite runs after every successful save, delete or toggle.
	OnWrite func(context.Context)
}

// ResourceHandler serves the list, dialog, save, delete and publish toggle
// of an admin resource. A console.Screen is built for every request and
// driven through the transition the request asks for.
type ResourceHandler[R, F any] struct {
	res      Resource[R, F]
	renderer *render.Renderer
	events   *service.EventService
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler[R, F any](renderer *render.Renderer, events *service.EventService, res Resource[R, F]) *ResourceHandler[R, F] {
	return &ResourceHandler[R, F]{
		res:      res,
		renderer: renderer,
		events:   events,
	}
}

// OnWrite sets the hook run after every successful write.
func (h *ResourceHandler[R, F]) OnWrite(fn func(context.Context)) *ResourceHandler[R, F] {
	h.res.OnWrite = fn
	return h
}

// Routes registers the resource routes on an /admin router.
func (h *ResourceHandler[R, F]) Routes(r chi.Router) {
	r.Get(h.res.Segment, h.List)
	r.Post(h.res.Segment+RouteSuffixSave, h.Save)
	r.Post(h.res.Segment+RouteParamID+RouteSuffixDelete, h.Delete)
	if h.res.Published != nil {
		r.Post(h.res.Segment+RouteParamID+RouteSuffixToggle, h.Toggle)
	}
}

// resourceView is the template data of an admin resource page.
type resourceView[R, F any] struct {
	Path         string
	Rows         []R
	Error        string
	Dialog       bool
	Mode         string
	DraftID      string
	Fields       F
	Errors       map[string]string
	SaveError    string
	ConfirmID    string
	ConfirmLabel string
	Publishable  bool
}

func (h *ResourceHandler[R, F]) path() string {
	return RouteAdmin + h.res.Segment
}

func (h *ResourceHandler[R, F]) metricName() string {
	return strings.TrimPrefix(h.res.Segment, "/")
}

// List handles GET /admin/<resource>.
// ?new=1 opens an empty dialog, ?edit={id} opens the dialog on a row and
// ?delete={id} asks for delete confirmation.
func (h *ResourceHandler[R, F]) List(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context())
	screen := console.NewScreen[R, F](h.res.Service)
	screen.Mount(r.Context())

	view := resourceView[R, F]{}
	q := r.URL.Query()
	switch {
	case q.Get("new") != "":
		screen.AddNew()
	case q.Get("edit") != "":
		if err := screen.Edit(q.Get("edit")); err != nil {
			view.Error = i18n.T(lang.String(), "error.record_not_found")
		}
	case q.Get("delete") != "":
		if row, ok := h.findRow(screen.Rows(), q.Get("delete")); ok {
			view.ConfirmID = h.res.Service.RowID(row)
			view.ConfirmLabel = h.res.Label(row)
		} else {
			view.Error = i18n.T(lang.String(), "error.record_not_found")
		}
	}

	h.render(w, r, http.StatusOK, screen, view)
}

// Save handles POST /admin/<resource>/save. A form without an id creates
// a record, otherwise that record is updated. On success the browser is
// sent back to the list; on failure the dialog is shown again with the
// submitted values and the error.
func (h *ResourceHandler[R, F]) Save(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context()).String()
	listURL := langURL(r, h.path())

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, listURL, i18n.T(lang, "msg.invalid_form"))
		return
	}

	form := newFormReader(r)
	fields := h.res.Parse(form)
	id := strings.TrimSpace(r.PostForm.Get("id"))

	screen := console.NewScreen[R, F](h.res.Service)
	screen.Mount(r.Context())
	if id == "" {
		screen.Open(model.New(fields))
	} else {
		screen.Open(model.Existing(id, fields))
	}

	if !form.valid() {
		h.render(w, r, http.StatusUnprocessableEntity, screen, resourceView[R, F]{
			Errors:    form.errors,
			SaveError: i18n.T(lang, "msg.fix_errors"),
		})
		return
	}

	err := screen.Save(r.Context())
	metrics.ObserveWrite(h.metricName(), "save", err)
	if err != nil {
		status, view := h.saveFailure(lang, err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to save record", "error", err, "resource", h.metricName(), "id", id)
		}
		h.render(w, r, status, screen, view)
		return
	}

	h.written(r.Context())
	_ = h.events.LogContentEvent(r.Context(), "Saved "+h.metricName(), map[string]any{
		"id":    id,
		"email": middleware.GetUserEmail(r),
	})
	flashSuccess(w, r, h.renderer, listURL, i18n.T(lang, "msg.saved", i18n.T(lang, h.res.Noun)))
}

// saveFailure maps a save error to a status code and the dialog error view.
// Transport errors are shown as they are.
func (h *ResourceHandler[R, F]) saveFailure(lang string, err error) (int, resourceView[R, F]) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		fieldErrs := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fieldErrs[field] = ferr.Error()
		}
		return http.StatusUnprocessableEntity, resourceView[R, F]{
			Errors:    fieldErrs,
			SaveError: i18n.T(lang, "msg.fix_errors"),
		}
	case errors.Is(err, service.ErrSlugTaken):
		msg := i18n.T(lang, "msg.slug_taken")
		return http.StatusConflict, resourceView[R, F]{
			Errors:    map[string]string{"slug": msg},
			SaveError: msg,
		}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, resourceView[R, F]{
			SaveError: i18n.T(lang, "error.record_not_found"),
		}
	}
	return http.StatusInternalServerError, resourceView[R, F]{SaveError: err.Error()}
}

// Delete handles POST /admin/<resource>/{id}/delete.
func (h *ResourceHandler[R, F]) Delete(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context()).String()
	listURL := langURL(r, h.path())
	id := chi.URLParam(r, "id")

	screen := console.NewScreen[R, F](h.res.Service)
	err := screen.Delete(r.Context(), id)
	metrics.ObserveWrite(h.metricName(), "delete", err)
	if err != nil {
		slog.Error("failed to delete record", "error", err, "resource", h.metricName(), "id", id)
		flashError(w, r, h.renderer, listURL, err.Error())
		return
	}

	h.written(r.Context())
	_ = h.events.LogContentEvent(r.Context(), "Deleted "+h.metricName(), map[string]any{
		"id":    id,
		"email": middleware.GetUserEmail(r),
	})
	flashSuccess(w, r, h.renderer, listURL, i18n.T(lang, "msg.deleted", i18n.T(lang, h.res.Noun)))
}

// Toggle handles POST /admin/<resource>/{id}/toggle.
func (h *ResourceHandler[R, F]) Toggle(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context()).String()
	listURL := langURL(r, h.path())
	id := chi.URLParam(r, "id")

	screen := console.NewScreen[R, F](h.res.Service)
	err := screen.TogglePublish(r.Context(), id)
	metrics.ObserveWrite(h.metricName(), "toggle", err)
	switch {
	case errors.Is(err, console.ErrNotPublishable):
		http.NotFound(w, r)
		return
	case errors.Is(err, service.ErrNotFound):
		flashError(w, r, h.renderer, listURL, i18n.T(lang, "error.record_not_found"))
		return
	case err != nil:
		slog.Error("failed to toggle publish", "error", err, "resource", h.metricName(), "id", id)
		flashError(w, r, h.renderer, listURL, err.Error())
		return
	}

	h.written(r.Context())

	key := "msg.unpublished"
	if row, ok := h.findRow(screen.Rows(), id); ok && h.res.Published != nil && h.res.Published(row) {
		key = "msg.published"
	}

	_ = h.events.LogContentEvent(r.Context(), "Toggled "+h.metricName(), map[string]any{
		"id":    id,
		"email": middleware.GetUserEmail(r),
	})
	flashSuccess(w, r, h.renderer, listURL, i18n.T(lang, key, i18n.T(lang, h.res.Noun)))
}

func (h *ResourceHandler[R, F]) written(ctx context.Context) {
	if h.res.OnWrite != nil {
		h.res.OnWrite(ctx)
	}
}

func (h *ResourceHandler[R, F]) findRow(rows []R, id string) (R, bool) {
	for _, row := range rows {
		if h.res.Service.RowID(row) == id {
			return row, true
		}
	}
	var zero R
	return zero, false
}

// render fills view from the screen state and renders the page.
func (h *ResourceHandler[R, F]) render(w http.ResponseWriter, r *http.Request, status int, screen *console.Screen[R, F], view resourceView[R, F]) {
	lang := middleware.GetLang(r.Context()).String()

	view.Path = h.path()
	view.Rows = screen.Rows()
	view.Publishable = screen.Publishable()
	if view.Error == "" && view.SaveError == "" {
		if err := screen.Err(); err != nil && !errors.Is(err, console.ErrRowNotFound) {
			view.Error = err.Error()
		}
	}
	if d, ok := screen.Draft(); ok {
		view.Dialog = true
		view.Mode = screen.Mode().String()
		view.DraftID = screen.DraftID()
		view.Fields = d.Fields()
	}

	renderPage(w, r, h.renderer, status, h.res.Template, render.TemplateData{
		Title: i18n.T(lang, h.res.Noun),
		Data:  view,
	})
}
