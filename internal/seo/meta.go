// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds meta tags, JSON-LD, sitemap.xml and robots.txt for the
// public site.
package seo

import (
	"encoding/json"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// DescriptionLength is the maximum meta description length in runes.
const DescriptionLength = 160

// stripPolicy removes every tag and keeps the text.
var stripPolicy = bluemonday.StrictPolicy()

// Meta holds the SEO meta tag data for a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OGImage     string
	OGType      string // website or article
	Robots      string
}

// PageData contains page information for building meta tags.
type PageData struct {
	Title       string
	Summary     string // excerpt or description; the body is used when empty
	Body        string
	Path        string // e.g. /blog/hello-world
	Image       string
	PublishedAt *time.Time
	NoIndex     bool
}

// BuildMeta creates a Meta for page. A nil page describes the home page.
func BuildMeta(page *PageData, siteURL, siteName string) Meta {
	if page == nil {
		return Meta{
			Title:     siteName,
			Canonical: absoluteURL("/", siteURL),
			OGType:    "website",
			Robots:    "index,follow",
		}
	}

	meta := Meta{
		Title:     page.Title,
		Canonical: absoluteURL(page.Path, siteURL),
		OGImage:   absoluteURL(page.Image, siteURL),
		OGType:    "website",
		Robots:    "index,follow",
	}
	if page.PublishedAt != nil {
		meta.OGType = "article"
	}
	if page.NoIndex {
		meta.Robots = "noindex,nofollow"
	}

	source := page.Summary
	if strings.TrimSpace(source) == "" {
		source = page.Body
	}
	meta.Description = Description(source, DescriptionLength)

	return meta
}

// Description turns arbitrary text or HTML into a plain one-line summary of
// at most maxLen runes, cut at a word boundary where possible.
func Description(text string, maxLen int) string {
	plain := html.UnescapeString(stripPolicy.Sanitize(text))
	plain = strings.Join(strings.Fields(plain), " ")
	return truncateText(plain, maxLen)
}

// ArticleSchema represents JSON-LD Article structured data.
type ArticleSchema struct {
	Context          string `json:"@context"`
	Type             string `json:"@type"`
	Headline         string `json:"headline"`
	Description      string `json:"description,omitempty"`
	Image            string `json:"image,omitempty"`
	DatePublished    string `json:"datePublished,omitempty"`
	MainEntityOfPage string `json:"mainEntityOfPage,omitempty"`
	InLanguage       string `json:"inLanguage,omitempty"`
}

// BuildArticleSchema creates JSON-LD Article data for a blog post.
func BuildArticleSchema(page *PageData, siteURL, lang string) template.JS {
	if page == nil {
		return ""
	}

	article := ArticleSchema{
		Context:          "https://schema.org",
		Type:             "Article",
		Headline:         page.Title,
		Description:      Description(page.Summary, DescriptionLength),
		Image:            absoluteURL(page.Image, siteURL),
		MainEntityOfPage: absoluteURL(page.Path, siteURL),
		InLanguage:       lang,
	}
	if page.PublishedAt != nil {
		article.DatePublished = page.PublishedAt.UTC().Format(time.RFC3339)
	}

	return marshalJSONLD(article)
}

// marshalJSONLD marshals structured data to JSON-LD script tag content.
func marshalJSONLD(v any) template.JS {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(data)
}

// truncateText truncates text to maxLen runes at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	truncated := string(runes[:maxLen])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// absoluteURL ensures a URL is absolute by prepending the site URL if needed.
func absoluteURL(u, siteURL string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return siteURL + u
}
