// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package views projects stored rows into the language-specific shapes shown
// on public pages and returned by the JSON API.
//
// A bilingual field shows its Vietnamese value for model.LangVN and its
// English value otherwise. A missing value projects to "" and is never
// replaced by the other language.
package views

import (
	"time"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// Experience is a projected timeline entry.
type Experience struct {
	ID         string   `json:"id"`
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
	SortOrder  int64    `json:"sort_order"`
}

// Education is a projected education entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
	SortOrder   int64  `json:"sort_order"`
}

// Post is a projected blog post.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Product is a projected store product.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	PriceLabel  string    `json:"price_label"`
	Image       string    `json:"image,omitempty"`
	FileURL     string    `json:"file_url,omitempty"`
	ProductType string    `json:"product_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// Content maps content slot keys to projected values.
type Content map[string]string

// Get returns the value of slot key, "" when unset.
func (c Content) Get(key string) string {
	return c[key]
}

// NewExperience projects one experience row.
func NewExperience(lang model.Lang, row store.Experience) Experience {
	highlights := util.LinesFromNull(row.HighlightsEn)
	if lang == model.LangVN {
		highlights = util.LinesFromNull(row.HighlightsVn)
	}
	if highlights == nil {
		highlights = []string{}
	}
	return Experience{
		ID:         row.ID,
		Role:       lang.Pick(row.RoleEn, row.RoleVn),
		Company:    row.Company,
		Location:   util.StringFromNull(row.Location),
		Period:     row.Period,
		Highlights: highlights,
		SortOrder:  row.SortOrder,
	}
}

// NewEducation projects one education row.
func NewEducation(lang model.Lang, row store.Education) Education {
	return Education{
		ID:          row.ID,
		Degree:      lang.Pick(row.DegreeEn, row.DegreeVn),
		School:      row.School,
		Period:      row.Period,
		Description: lang.Pick(row.DescriptionEn, row.DescriptionVn),
		SortOrder:   row.SortOrder,
	}
}

// NewPost projects one blog post row.
func NewPost(lang model.Lang, row store.BlogPost) Post {
	p := Post{
		ID:         row.ID,
		Title:      lang.Pick(row.TitleEn, row.TitleVn),
		Slug:       row.Slug,
		Excerpt:    lang.Pick(row.ExcerptEn, row.ExcerptVn),
		Content:    lang.Pick(row.ContentEn, row.ContentVn),
		CoverImage: util.StringFromNull(row.CoverImage),
		CreatedAt:  row.CreatedAt,
	}
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		p.PublishedAt = &t
	}
	return p
}

// NewProduct projects one product row.
func NewProduct(lang model.Lang, row store.Product) Product {
	return Product{
		ID:          row.ID,
		Name:        lang.Pick(row.NameEn, row.NameVn),
		Slug:        row.Slug,
		Description: lang.Pick(row.DescriptionEn, row.DescriptionVn),
		Price:       row.Price,
		Currency:    row.Currency,
		PriceLabel:  FormatPrice(row.Price, row.Currency),
		Image:       util.StringFromNull(row.Image),
		FileURL:     util.StringFromNull(row.FileUrl),
		ProductType: row.ProductType,
		CreatedAt:   row.CreatedAt,
	}
}

// NewContent projects stored slot rows. Every known slot is present in the
// result, unsaved ones as "".
func NewContent(lang model.Lang, rows []store.SiteContent) Content {
	c := make(Content, len(model.ContentSlots))
	for _, slot := range model.ContentSlots {
		c[slot.Key] = ""
	}
	for _, row := range rows {
		if !model.IsContentKey(row.Key) {
			continue
		}
		c[row.Key] = lang.Pick(row.ValueEn, row.ValueVn)
	}
	return c
}

// Experiences projects a list of experience rows.
func Experiences(lang model.Lang, rows []store.Experience) []Experience {
	return project(rows, func(r store.Experience) Experience { return NewExperience(lang, r) })
}

// EducationList projects a list of education rows.
func EducationList(lang model.Lang, rows []store.Education) []Education {
	return project(rows, func(r store.Education) Education { return NewEducation(lang, r) })
}

// Posts projects a list of blog post rows.
func Posts(lang model.Lang, rows []store.BlogPost) []Post {
	return project(rows, func(r store.BlogPost) Post { return NewPost(lang, r) })
}

// Products projects a list of product rows.
func Products(lang model.Lang, rows []store.Product) []Product {
	return project(rows, func(r store.Product) Product { return NewProduct(lang, r) })
}

func project[R, V any](rows []R, fn func(R) V) []V {
	out := make([]V, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
