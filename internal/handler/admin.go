// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/store"
)

// AdminHandler handles the admin dashboard.
type AdminHandler struct {
	renderer  *render.Renderer
	dashboard *service.DashboardService
	events    *service.EventService
	guide     fs.FS
}

// NewAdminHandler creates a new AdminHandler. guide holds one Markdown file
// per language, named <lang>.md.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, guide fs.FS) *AdminHandler {
	return &AdminHandler{
		renderer:  renderer,
		dashboard: service.NewDashboardService(db),
		events:    service.NewEventService(db),
		guide:     guide,
	}
}

// DashboardData holds data for the dashboard template.
type DashboardData struct {
	Stats  service.DashboardStats
	Guide  template.HTML
	Events []store.Event
	Error  string
}

// Dashboard renders the admin dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context())

	data := DashboardData{Guide: h.quickGuide(lang)}

	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		slog.Error("failed to load dashboard stats", "error", err)
		data.Error = err.Error()
	}
	data.Stats = stats

	events, err := h.events.Recent(r.Context(), recentEventsLimit)
	if err != nil {
		slog.Error("failed to load recent events", "error", err)
	}
	data.Events = events

	renderPage(w, r, h.renderer, http.StatusOK, "admin/dashboard", render.TemplateData{
		Title: i18n.T(lang.String(), "nav.dashboard"),
		Data:  data,
	})
}

// quickGuide renders the guide for lang, falling back to the default language.
func (h *AdminHandler) quickGuide(lang model.Lang) template.HTML {
	if h.guide == nil {
		return ""
	}
	src, err := fs.ReadFile(h.guide, lang.String()+".md")
	if err != nil {
		src, err = fs.ReadFile(h.guide, model.DefaultLang.String()+".md")
		if err != nil {
			return ""
		}
	}
	return render.Markdown(string(src))
}
