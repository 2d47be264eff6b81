// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/metrics"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/service"
)

// ContentHandler handles the site content form.
type ContentHandler struct {
	renderer *render.Renderer
	content  *service.ContentService
	events   *service.EventService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(db *sql.DB, renderer *render.Renderer) *ContentHandler {
	return &ContentHandler{
		renderer: renderer,
		content:  service.NewContentService(db),
		events:   service.NewEventService(db),
	}
}

type contentField struct {
	Key       string
	Multiline bool
	ValueEN   string
	ValueVN   string
}

type contentSection struct {
	Name   string
	Fields []contentField
}

// ContentData holds data for the site content template.
type ContentData struct {
	Sections []contentSection
	Error    string
}

// buildContentSections groups values by section in slot order.
func buildContentSections(values []model.ContentValue) []contentSection {
	byKey := make(map[string]model.ContentValue, len(values))
	for _, v := range values {
		byKey[v.Key] = v
	}

	sections := make([]contentSection, 0, len(model.ContentSections))
	for _, name := range model.ContentSections {
		section := contentSection{Name: name}
		for _, slot := range model.SlotsInSection(name) {
			v := byKey[slot.Key]
			section.Fields = append(section.Fields, contentField{
				Key:       slot.Key,
				Multiline: slot.Multiline,
				ValueEN:   v.ValueEN,
				ValueVN:   v.ValueVN,
			})
		}
		sections = append(sections, section)
	}
	return sections
}

// Edit renders the site content form.
func (h *ContentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context()).String()

	data := ContentData{}
	values, err := h.content.Values(r.Context())
	if err != nil {
		slog.Error("failed to load site content", "error", err)
		data.Error = err.Error()
	}
	data.Sections = buildContentSections(values)

	renderPage(w, r, h.renderer, http.StatusOK, "admin/content", render.TemplateData{
		Title: i18n.T(lang, "nav.content"),
		Data:  data,
	})
}

// Save saves every slot. Slots saved before a failing one stay saved; the
// failures are reported together.
func (h *ContentHandler) Save(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context()).String()
	pageURL := langURL(r, redirectAdminContent)

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, pageURL, i18n.T(lang, "msg.invalid_form"))
		return
	}

	values := parseContentForm(newFormReader(r))
	err := h.content.BulkSave(r.Context(), values)
	metrics.ObserveWrite("content", "save", err)
	if err != nil {
		slog.Error("failed to save site content", "error", err)
		flashError(w, r, h.renderer, pageURL, err.Error())
		return
	}

	_ = h.events.LogContentEvent(r.Context(), "Saved site content", map[string]any{
		"email": middleware.GetUserEmail(r),
	})
	flashSuccess(w, r, h.renderer, pageURL, i18n.T(lang, "msg.content_saved"))
}
