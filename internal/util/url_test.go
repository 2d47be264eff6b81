// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestValidateLinkURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://cdn.example.com/cover.jpg", false},
		{"http", "http://example.com/a.png", false},
		{"relative path", "/uploads/cv.pdf", false},
		{"javascript scheme", "javascript:alert(1)", true},
		{"data scheme", "data:text/html;base64,PGI+", true},
		{"protocol relative", "//evil.example.com/x", true},
		{"backslash trick", `/\evil.example.com`, true},
		{"bare word", "cover.jpg", true},
		{"missing host", "https:///path", true},
		{"too long", "https://example.com/" + strings.Repeat("a", MaxURLLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLinkURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLinkURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
