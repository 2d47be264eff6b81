// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"github.com/olegiv/folio/internal/model"
)

// ContextKeyLanguage holds the display language of the request.
const ContextKeyLanguage ContextKey = "language"

// LangParam is the query parameter that selects the display language.
const LangParam = "lang"

// Language creates middleware that resolves the display language once per
// request from ?lang=en|vn (vi is accepted too). Missing or unknown values
// fall back to the default language. Nothing is persisted.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, ok := model.ParseLang(r.URL.Query().Get(LangParam))
		if !ok {
			lang = model.DefaultLang
		}
		next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
	})
}

// WithLang returns a copy of ctx carrying lang.
func WithLang(ctx context.Context, lang model.Lang) context.Context {
	return context.WithValue(ctx, ContextKeyLanguage, lang)
}

// GetLang returns the request language, or the default when none was resolved.
func GetLang(ctx context.Context) model.Lang {
	if lang, ok := ctx.Value(ContextKeyLanguage).(model.Lang); ok {
		return lang
	}
	return model.DefaultLang
}
