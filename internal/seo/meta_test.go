// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestBuildMetaHomepage(t *testing.T) {
	meta := BuildMeta(nil, "https://example.com/", "Folio")

	if meta.Title != "Folio" {
		t.Errorf("Title = %q, want %q", meta.Title, "Folio")
	}
	if meta.Canonical != "https://example.com/" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
	if meta.OGType != "website" {
		t.Errorf("OGType = %q, want website", meta.OGType)
	}
	if meta.Robots != "index,follow" {
		t.Errorf("Robots = %q", meta.Robots)
	}
}

func TestBuildMetaPost(t *testing.T) {
	published := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	page := &PageData{
		Title:       "Hello",
		Summary:     "<p>Short <strong>intro</strong></p>",
		Body:        "ignored",
		Path:        "/blog/hello",
		Image:       "/uploads/cover.jpg",
		PublishedAt: &published,
	}

	meta := BuildMeta(page, "https://example.com", "Folio")

	if meta.Description != "Short intro" {
		t.Errorf("Description = %q, want %q", meta.Description, "Short intro")
	}
	if meta.Canonical != "https://example.com/blog/hello" {
		t.Errorf("Canonical = %q", meta.Canonical)
	}
	if meta.OGImage != "https://example.com/uploads/cover.jpg" {
		t.Errorf("OGImage = %q", meta.OGImage)
	}
	if meta.OGType != "article" {
		t.Errorf("OGType = %q, want article", meta.OGType)
	}
}

func TestBuildMetaFallbackToBody(t *testing.T) {
	page := &PageData{Title: "Product", Body: "  A   fine\nproduct  ", Path: "/store/p"}

	meta := BuildMeta(page, "https://example.com", "Folio")

	if meta.Description != "A fine product" {
		t.Errorf("Description = %q, want %q", meta.Description, "A fine product")
	}
	if meta.OGType != "website" {
		t.Errorf("OGType = %q, want website", meta.OGType)
	}
}

func TestBuildMetaNoIndex(t *testing.T) {
	meta := BuildMeta(&PageData{Title: "x", NoIndex: true}, "https://example.com", "Folio")
	if meta.Robots != "noindex,nofollow" {
		t.Errorf("Robots = %q", meta.Robots)
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"plain", "hello world", 160, "hello world"},
		{"tags stripped", "<h1>Title</h1><p>Body</p>", 160, "TitleBody"},
		{"script removed", "<script>alert(1)</script>safe", 160, "safe"},
		{"entities decoded", "Fish &amp; chips", 160, "Fish & chips"},
		{"whitespace collapsed", "a\n\n  b\tc", 160, "a b c"},
		{"truncated at word", "one two three four", 12, "one two..."},
		{"empty", "", 160, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Description(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDescriptionVietnamese(t *testing.T) {
	input := strings.Repeat("Việt Nam ", 40)
	got := Description(input, DescriptionLength)

	if !utf8.ValidString(got) {
		t.Fatalf("Description produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n > DescriptionLength {
		t.Errorf("Description length = %d runes, want <= %d", n, DescriptionLength)
	}
}

func TestBuildArticleSchema(t *testing.T) {
	published := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	page := &PageData{
		Title:       "Hello",
		Summary:     "Intro",
		Path:        "/blog/hello",
		PublishedAt: &published,
	}

	raw := BuildArticleSchema(page, "https://example.com", "vi")

	var got ArticleSchema
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if got.Type != "Article" || got.Headline != "Hello" {
		t.Errorf("unexpected schema: %+v", got)
	}
	if got.DatePublished != "2026-03-01T10:00:00Z" {
		t.Errorf("DatePublished = %q", got.DatePublished)
	}
	if got.MainEntityOfPage != "https://example.com/blog/hello" {
		t.Errorf("MainEntityOfPage = %q", got.MainEntityOfPage)
	}
	if got.InLanguage != "vi" {
		t.Errorf("InLanguage = %q", got.InLanguage)
	}
}

func TestBuildArticleSchemaNilPage(t *testing.T) {
	if got := BuildArticleSchema(nil, "https://example.com", "en"); got != "" {
		t.Errorf("expected empty schema, got %q", got)
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		u, site, want string
	}{
		{"", "https://example.com", ""},
		{"/a", "https://example.com/", "https://example.com/a"},
		{"a", "https://example.com", "https://example.com/a"},
		{"https://cdn.example.com/x.png", "https://example.com", "https://cdn.example.com/x.png"},
	}
	for _, tt := range tests {
		if got := absoluteURL(tt.u, tt.site); got != tt.want {
			t.Errorf("absoluteURL(%q, %q) = %q, want %q", tt.u, tt.site, got, tt.want)
		}
	}
}
