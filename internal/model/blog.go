// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlogPostFields is the editable form of a blog post.
type BlogPostFields struct {
	TitleEN    string `json:"title_en"`
	TitleVN    string `json:"title_vn"`
	Slug       string `json:"slug"`
	ExcerptEN  string `json:"excerpt_en"`
	ExcerptVN  string `json:"excerpt_vn"`
	ContentEN  string `json:"content_en"`
	ContentVN  string `json:"content_vn"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

// Validate implements validation.Validatable.
func (f BlogPostFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.TitleEN, validation.Required, validation.RuneLength(0, 300)),
		validation.Field(&f.TitleVN, validation.RuneLength(0, 300)),
		validation.Field(&f.Slug, validation.Required, validation.RuneLength(0, 200), slugRule),
		validation.Field(&f.CoverImage, linkRule),
	)
}

// Trimmed returns the fields with surrounding whitespace removed.
func (f BlogPostFields) Trimmed() BlogPostFields {
	f.TitleEN = strings.TrimSpace(f.TitleEN)
	f.TitleVN = strings.TrimSpace(f.TitleVN)
	f.Slug = strings.TrimSpace(f.Slug)
	f.ExcerptEN = strings.TrimSpace(f.ExcerptEN)
	f.ExcerptVN = strings.TrimSpace(f.ExcerptVN)
	f.ContentEN = strings.TrimSpace(f.ContentEN)
	f.ContentVN = strings.TrimSpace(f.ContentVN)
	f.CoverImage = strings.TrimSpace(f.CoverImage)
	return f
}
