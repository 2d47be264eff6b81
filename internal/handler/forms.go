// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/olegiv/folio/internal/model"
)

// formReader reads typed values from a parsed form and collects
// per-field conversion errors keyed by field name.
type formReader struct {
	r      *http.Request
	errors map[string]string
}

func newFormReader(r *http.Request) *formReader {
	return &formReader{r: r, errors: make(map[string]string)}
}

// str returns the raw value of name.
func (f *formReader) str(name string) string {
	return f.r.PostForm.Get(name)
}

// checked reports whether a checkbox named name was checked.
func (f *formReader) checked(name string) bool {
	switch strings.ToLower(f.r.PostForm.Get(name)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// integer parses a whole number. An empty value is 0.
func (f *formReader) integer(name string) int64 {
	v := strings.TrimSpace(f.r.PostForm.Get(name))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		f.errors[name] = "must be a whole number"
		return 0
	}
	return n
}

// number parses a decimal number. An empty value is 0.
func (f *formReader) number(name string) float64 {
	v := strings.TrimSpace(f.r.PostForm.Get(name))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		f.errors[name] = "must be a number"
		return 0
	}
	return n
}

// valid reports whether every value converted cleanly.
func (f *formReader) valid() bool {
	return len(f.errors) == 0
}

func parseExperienceForm(f *formReader) model.ExperienceFields {
	return model.ExperienceFields{
		RoleEN:       f.str("role_en"),
		RoleVN:       f.str("role_vn"),
		Company:      f.str("company"),
		Location:     f.str("location"),
		Period:       f.str("period"),
		HighlightsEN: f.str("highlights_en"),
		HighlightsVN: f.str("highlights_vn"),
		SortOrder:    f.integer("sort_order"),
	}
}

func parseEducationForm(f *formReader) model.EducationFields {
	return model.EducationFields{
		DegreeEN:      f.str("degree_en"),
		DegreeVN:      f.str("degree_vn"),
		School:        f.str("school"),
		Period:        f.str("period"),
		DescriptionEN: f.str("description_en"),
		DescriptionVN: f.str("description_vn"),
		SortOrder:     f.integer("sort_order"),
	}
}

func parseBlogPostForm(f *formReader) model.BlogPostFields {
	return model.BlogPostFields{
		TitleEN:    f.str("title_en"),
		TitleVN:    f.str("title_vn"),
		Slug:       f.str("slug"),
		ExcerptEN:  f.str("excerpt_en"),
		ExcerptVN:  f.str("excerpt_vn"),
		ContentEN:  f.str("content_en"),
		ContentVN:  f.str("content_vn"),
		CoverImage: f.str("cover_image"),
		Published:  f.checked("published"),
	}
}

func parseProductForm(f *formReader) model.ProductFields {
	return model.ProductFields{
		NameEN:        f.str("name_en"),
		NameVN:        f.str("name_vn"),
		Slug:          f.str("slug"),
		DescriptionEN: f.str("description_en"),
		DescriptionVN: f.str("description_vn"),
		Price:         f.number("price"),
		Currency:      f.str("currency"),
		Image:         f.str("image"),
		FileURL:       f.str("file_url"),
		ProductType:   f.str("product_type"),
		Published:     f.checked("published"),
	}
}

// parseContentForm reads the en_<key> and vn_<key> inputs of every slot.
func parseContentForm(f *formReader) []model.ContentValue {
	values := make([]model.ContentValue, 0, len(model.ContentSlots))
	for _, slot := range model.ContentSlots {
		values = append(values, model.ContentValue{
			Key:     slot.Key,
			ValueEN: f.str("en_" + slot.Key),
			ValueVN: f.str("vn_" + slot.Key),
		})
	}
	return values
}
