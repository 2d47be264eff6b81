// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"strings"
	"time"
)

// NullStringFromValue creates a sql.NullString from a string value.
// An empty string becomes NULL, so optional columns never hold "".
func NullStringFromValue(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullStringFromTrimmed is NullStringFromValue after trimming surrounding whitespace.
func NullStringFromTrimmed(s string) sql.NullString {
	return NullStringFromValue(strings.TrimSpace(s))
}

// NullTimeFromValue creates a valid sql.NullTime, or NULL for the zero time.
func NullTimeFromValue(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// StringFromNull returns the string of a NullString, or "" when NULL.
func StringFromNull(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
