// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"database/sql"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/views"
)

var (
	md = goldmark.New(goldmark.WithExtensions(extension.GFM))
	// mdPolicy sanitizes rendered markdown
	mdPolicy = bluemonday.UGCPolicy()
)

// templateFuncs returns custom template functions.
func (r *Renderer) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"T": func(lang model.Lang, key string, args ...any) string {
			return i18n.T(lang.String(), key, args...)
		},
		"langURL":     LangURL,
		"formatDate":  FormatDate,
		"formatPrice": views.FormatPrice,
		"nl2br":       NL2BR,
		"markdown":    Markdown,
		"nullStr": func(s sql.NullString) string {
			if !s.Valid {
				return ""
			}
			return s.String
		},
		"truncate": Truncate,
		"join":     strings.Join,
		"langs": func() []model.Lang {
			return model.Langs
		},
		"isLang": func(current model.Lang, code string) bool {
			return current.String() == code
		},
		"add": func(a, b int) int {
			return a + b
		},
		"productTypes": func() []string {
			return model.ProductTypes
		},
		"currencies": func() []string {
			return model.Currencies
		},
		"contentLabel": func(lang model.Lang, key string) string {
			return i18n.T(lang.String(), "content."+key)
		},
	}
}

// LangURL returns p with the lang query parameter set.
func LangURL(p string, lang model.Lang) string {
	u, err := url.Parse(p)
	if err != nil {
		return p
	}
	q := u.Query()
	q.Set("lang", lang.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// FormatDate formats a date for lang. It accepts time.Time, *time.Time and
// sql.NullTime; a nil or NULL value yields "".
func FormatDate(v any, lang model.Lang) string {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return ""
		}
		t = *x
	case sql.NullTime:
		if !x.Valid {
			return ""
		}
		t = x.Time
	default:
		return ""
	}
	if t.IsZero() {
		return ""
	}
	if lang == model.LangVN {
		return t.Format("02/01/2006")
	}
	return t.Format("Jan 2, 2006")
}

// NL2BR escapes s and turns newlines into <br> tags.
func NL2BR(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}

// Markdown renders trusted or untrusted markdown to sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return NL2BR(src)
	}
	return template.HTML(mdPolicy.SanitizeBytes(buf.Bytes()))
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
