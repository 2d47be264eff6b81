// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that copies selected records into
// the events table, which backs the admin dashboard activity feed.
package logging

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

// CategoryKey is the attribute that marks a record for the event log and
// names its category.
const CategoryKey = "category"

// URLKey is the metadata field holding the path of the request that logged
// the record.
const URLKey = "url"

// EventLogHandler is a slog.Handler that wraps another handler and also writes
// WARN and ERROR records, and any record carrying a category attribute, to
// the events table.
type EventLogHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level // Minimum level forwarded without a category (default: WARN)
	attrs   []slog.Attr
}

// NewEventLogHandler creates a new EventLogHandler that wraps the given handler.
func NewEventLogHandler(inner slog.Handler, db *sql.DB) *EventLogHandler {
	return NewEventLogHandlerWithLevel(inner, db, slog.LevelWarn)
}

// NewEventLogHandlerWithLevel creates a new EventLogHandler with a custom minimum level.
func NewEventLogHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *EventLogHandler {
	return &EventLogHandler{
		inner:   inner,
		queries: store.New(db),
		level:   level,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	category, tagged := h.category(r)
	if r.Level >= h.level || (tagged && r.Level >= slog.LevelInfo) {
		h.writeToEventLog(ctx, r, category)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EventLogHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
		attrs:   append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
		attrs:   h.attrs,
	}
}

// writeToEventLog stores r. Failures are dropped so logging never blocks on
// the database.
func (h *EventLogHandler) writeToEventLog(ctx context.Context, r slog.Record, category string) {
	if category == "" {
		category = inferCategory(r.Message)
	}

	createdAt := r.Time
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Background context: the request may already be cancelled
	_, _ = h.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Level:     eventLevel(r.Level),
		Category:  category,
		Message:   r.Message,
		Metadata:  h.metadata(ctx, r),
		CreatedAt: createdAt.UTC(),
	})
}

// category returns the explicit category attribute, if any.
func (h *EventLogHandler) category(r slog.Record) (string, bool) {
	var category string
	for _, a := range h.attrs {
		if a.Key == CategoryKey {
			category = a.Value.String()
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == CategoryKey {
			category = a.Value.String()
			return false
		}
		return true
	})
	return category, category != ""
}

func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	default:
		return model.EventLevelInfo
	}
}

// inferCategory guesses a category from the message text.
func inferCategory(message string) string {
	msg := strings.ToLower(message)
	switch {
	case containsAny(msg, "auth", "login", "logout", "session", "csrf"):
		return model.EventCategoryAuth
	case containsAny(msg, "post", "product", "experience", "education", "content", "slug"):
		return model.EventCategoryContent
	default:
		return model.EventCategorySystem
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// metadata collects the record's attributes, minus the category, as a
// JSON object of strings. The request path from ctx is added as url unless
// the record sets one itself.
func (h *EventLogHandler) metadata(ctx context.Context, r slog.Record) string {
	fields := make(map[string]string, len(h.attrs)+r.NumAttrs())
	add := func(a slog.Attr) bool {
		if a.Key != CategoryKey && a.Key != "" {
			fields[a.Key] = a.Value.Resolve().String()
		}
		return true
	}
	for _, a := range h.attrs {
		add(a)
	}
	r.Attrs(add)
	if path := middleware.GetRequestPath(ctx); path != "" {
		if _, ok := fields[URLKey]; !ok {
			fields[URLKey] = path
		}
	}

	if len(fields) == 0 {
		return "{}"
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "{}"
	}
	return string(b)
}
