// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"strings"
)

// SplitLines splits a text block into lines, dropping blank lines.
// Carriage returns from browser form submissions are removed.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	var lines []string
	for line := range strings.SplitSeq(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// JoinLines joins lines with newlines, the inverse of SplitLines for non-blank lines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// NullLines normalizes a text block into a line-delimited column value.
// A block with no non-blank line is stored as NULL.
func NullLines(s string) sql.NullString {
	return NullStringFromValue(JoinLines(SplitLines(s)))
}

// LinesFromNull returns the lines stored in a line-delimited column.
func LinesFromNull(ns sql.NullString) []string {
	if !ns.Valid {
		return nil
	}
	return SplitLines(ns.String)
}
