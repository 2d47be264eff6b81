// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose helpers: URL slug derivation and
// validation, nullable column conversion and line-delimited list handling.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// slugStrip matches anything that is not a word character, whitespace or a hyphen.
	// Letters and marks of any script count as word characters.
	slugStrip = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Zs}-]+`)
	// slugSpaces matches runs of whitespace
	slugSpaces = regexp.MustCompile(`[\s\p{Zs}]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL slug.
// The result is lowercase, with punctuation removed, whitespace runs turned
// into single hyphens and no leading or trailing hyphen. Vietnamese (and any
// other non-Latin) letters are kept as they are, not transliterated.
// An empty or punctuation-only title yields "".
func Slugify(s string) string {
	// Compose accents so a letter and its diacritics stay one rune
	result := norm.NFC.String(s)

	result = strings.ToLower(result)

	result = slugStrip.ReplaceAllString(result, "")

	result = slugSpaces.ReplaceAllString(result, "-")

	result = multipleHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// IsValidSlug reports whether s could have been produced by Slugify:
// non-empty, lowercase word characters separated by single hyphens.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case r == '-' || r == '_':
		case unicode.IsDigit(r) || unicode.IsMark(r):
		case unicode.IsLetter(r):
			if unicode.IsUpper(r) {
				return false
			}
		default:
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
