// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/metrics"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/session"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	users           *service.UserService
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	eventService    *service.EventService
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		users:           service.NewUserService(db),
		renderer:        renderer,
		sessionManager:  sm,
		eventService:    service.NewEventService(db),
		loginProtection: lp,
	}
}

// LoginData holds data for the login template.
type LoginData struct {
	Email string
}

// LoginForm renders the login page. Users with a session go straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.Current(r.Context(), h.sessionManager); ok {
		http.Redirect(w, r, langURL(r, redirectAdmin), http.StatusSeeOther)
		return
	}

	lang := middleware.GetLang(r.Context()).String()
	renderPage(w, r, h.renderer, http.StatusOK, "auth/login", render.TemplateData{
		Title: i18n.T(lang, "auth.login"),
		Data:  LoginData{},
	})
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context()).String()
	loginURL := langURL(r, redirectLogin)

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, loginURL, i18n.T(lang, "auth.invalid_form_data"))
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, loginURL, i18n.T(lang, "auth.email_password_required"))
		return
	}

	clientIP := middleware.GetClientIP(r)

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.Locked(email); locked {
			metrics.ObserveLogin(metrics.LoginLocked)
			_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning, "Login attempt on locked account", map[string]any{"email": email, "ip": clientIP})
			flashError(w, r, h.renderer, loginURL, i18n.T(lang, "auth.account_locked", formatDuration(remaining)))
			return
		}
	}

	user, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		metrics.ObserveLogin(metrics.LoginFailure)
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("database error during login", "error", err)
		}
		_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning, "Login failed", map[string]any{"email": email, "ip": clientIP})

		// Unknown emails count too, so lockout does not reveal which accounts exist
		if h.loginProtection != nil {
			res := h.loginProtection.Fail(email)
			if res.Locked {
				_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning, "Account locked due to failed attempts", map[string]any{"email": email, "duration": res.LockedFor.String()})
				flashError(w, r, h.renderer, loginURL, i18n.T(lang, "auth.too_many_attempts", formatDuration(res.LockedFor)))
				return
			}
			if res.Remaining > 0 && res.Remaining <= 3 {
				flashError(w, r, h.renderer, loginURL, i18n.T(lang, "auth.attempts_remaining", res.Remaining))
				return
			}
		}
		flashError(w, r, h.renderer, loginURL, i18n.T(lang, "auth.invalid_credentials"))
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.Succeed(email)
	}

	// Looked up once; kept in the session for display only
	role, err := h.users.Role(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to look up role", "error", err, "user_id", user.ID)
		role = model.RoleUser
	}

	// A fresh token on login prevents session fixation
	if err := session.Start(r.Context(), h.sessionManager, session.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	}); err != nil {
		logAndInternalError(w, "session start error", "error", err)
		return
	}

	metrics.ObserveLogin(metrics.LoginSuccess)
	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelInfo, "User logged in", map[string]any{"email": user.Email, "ip": clientIP})

	flashSuccess(w, r, h.renderer, langURL(r, redirectAdmin), i18n.T(lang, "auth.welcome_back", user.Name))
}

// Logout handles user logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, _ := session.Current(r.Context(), h.sessionManager)
	email := id.Email
	if email != "" {
		_ = h.eventService.LogAuthEvent(r.Context(), model.EventLevelInfo, "User logged out", map[string]any{"email": email})
	}

	if err := session.End(r.Context(), h.sessionManager); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("user logged out", "email", email)

	lang := middleware.GetLang(r.Context()).String()
	flashAndRedirect(w, r, h.renderer, langURL(r, redirectLogin), i18n.T(lang, "auth.logged_out"), render.FlashInfo)
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
