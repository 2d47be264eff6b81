// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// NewExperiencesHandler serves /admin/experiences.
func NewExperiencesHandler(db *sql.DB, renderer *render.Renderer) *ResourceHandler[store.Experience, model.ExperienceFields] {
	return NewResourceHandler(renderer, service.NewEventService(db), Resource[store.Experience, model.ExperienceFields]{
		Segment:  RouteExperiences,
		Template: "admin/experiences",
		Noun:     "resource.experience",
		Service:  service.NewExperienceService(db),
		Parse:    parseExperienceForm,
		Label: func(row store.Experience) string {
			return util.StringFromNull(row.RoleEn) + " @ " + row.Company
		},
	})
}

// NewEducationHandler serves /admin/education.
func NewEducationHandler(db *sql.DB, renderer *render.Renderer) *ResourceHandler[store.Education, model.EducationFields] {
	return NewResourceHandler(renderer, service.NewEventService(db), Resource[store.Education, model.EducationFields]{
		Segment:  RouteEducation,
		Template: "admin/education",
		Noun:     "resource.education",
		Service:  service.NewEducationService(db),
		Parse:    parseEducationForm,
		Label: func(row store.Education) string {
			return util.StringFromNull(row.DegreeEn) + " @ " + row.School
		},
	})
}

// NewBlogAdminHandler serves /admin/blog.
func NewBlogAdminHandler(db *sql.DB, renderer *render.Renderer) *ResourceHandler[store.BlogPost, model.BlogPostFields] {
	return NewResourceHandler(renderer, service.NewEventService(db), Resource[store.BlogPost, model.BlogPostFields]{
		Segment:  RouteAdminBlog,
		Template: "admin/blog",
		Noun:     "resource.blog_post",
		Service:  service.NewBlogService(db),
		Parse:    parseBlogPostForm,
		Label: func(row store.BlogPost) string {
			if title := util.StringFromNull(row.TitleEn); title != "" {
				return title
			}
			return row.Slug
		},
		Published: func(row store.BlogPost) bool { return row.Published },
	})
}

// NewProductsHandler serves /admin/products.
func NewProductsHandler(db *sql.DB, renderer *render.Renderer) *ResourceHandler[store.Product, model.ProductFields] {
	return NewResourceHandler(renderer, service.NewEventService(db), Resource[store.Product, model.ProductFields]{
		Segment:  RouteProducts,
		Template: "admin/products",
		Noun:     "resource.product",
		Service:  service.NewProductService(db),
		Parse:    parseProductForm,
		Label: func(row store.Product) string {
			if name := util.StringFromNull(row.NameEn); name != "" {
				return name
			}
			return row.Slug
		},
		Published: func(row store.Product) bool { return row.Published },
	})
}
