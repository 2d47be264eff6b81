// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"strings"
)

// Lang selects which half of every bilingual field is displayed.
type Lang string

// Supported display languages.
const (
	LangEN Lang = "en"
	LangVN Lang = "vn"
)

// DefaultLang is used when a request does not choose a language.
const DefaultLang = LangEN

// Langs lists the supported languages in switcher order.
var Langs = []Lang{LangEN, LangVN}

// ParseLang parses a language code. "vi" is accepted as an alias of "vn".
func ParseLang(s string) (Lang, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return LangEN, true
	case "vn", "vi":
		return LangVN, true
	}
	return "", false
}

// String implements fmt.Stringer.
func (l Lang) String() string {
	return string(l)
}

// Pick projects a bilingual field: the Vietnamese value for LangVN, the
// English value otherwise. A NULL value yields "" and never falls back to
// the other language.
func (l Lang) Pick(en, vn sql.NullString) string {
	v := en
	if l == LangVN {
		v = vn
	}
	if !v.Valid {
		return ""
	}
	return v.String
}

// PickLines is Pick for list-valued bilingual fields.
func (l Lang) PickLines(en, vn []string) []string {
	if l == LangVN {
		return vn
	}
	return en
}
