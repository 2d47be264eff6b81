// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio/internal/cache"
	"github.com/olegiv/folio/internal/i18n"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/seo"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/views"
)

// FrontendHandler handles the public pages.
type FrontendHandler struct {
	renderer    *render.Renderer
	experiences *service.ExperienceService
	education   *service.EducationService
	blog        *service.BlogService
	products    *service.ProductService
	content     *service.ContentService
	public      *cache.Public
	siteURL     string
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, siteURL string) *FrontendHandler {
	return &FrontendHandler{
		renderer:    renderer,
		experiences: service.NewExperienceService(db),
		education:   service.NewEducationService(db),
		blog:        service.NewBlogService(db),
		products:    service.NewProductService(db),
		content:     service.NewContentService(db),
		siteURL:     siteURL,
	}
}

// WithCache serves generated output such as the sitemap through p.
func (h *FrontendHandler) WithCache(p *cache.Public) *FrontendHandler {
	h.public = p
	return h
}

// HomeData holds data for the home page template.
type HomeData struct {
	Content     views.Content
	Experiences []views.Experience
	Education   []views.Education
}

// BlogListData holds data for the blog listing template.
type BlogListData struct {
	Posts []views.Post
}

// PostData holds data for the blog post template.
type PostData struct {
	Post   views.Post
	Schema template.JS
}

// StoreData holds data for the store listing template.
type StoreData struct {
	Products []views.Product
}

// ProductData holds data for the product template.
type ProductData struct {
	Product views.Product
}

// NotFoundData holds data for the 404 template.
type NotFoundData struct {
	MessageKey string
	BackURL    string
	BackKey    string
}

// Home renders the home page.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.GetLang(ctx)

	contentRows, err := h.content.List(ctx)
	if err != nil {
		h.serverError(w, r, "failed to load site content", err)
		return
	}
	experiences, err := h.experiences.List(ctx)
	if err != nil {
		h.serverError(w, r, "failed to load experiences", err)
		return
	}
	education, err := h.education.List(ctx)
	if err != nil {
		h.serverError(w, r, "failed to load education", err)
		return
	}

	c := views.NewContent(lang, contentRows)
	renderPage(w, r, h.renderer, http.StatusOK, "public/home", render.TemplateData{
		MetaDescription: seo.Description(c.Get(model.ContentHeroIntro), seo.DescriptionLength),
		Data: HomeData{
			Content:     c,
			Experiences: views.Experiences(lang, experiences),
			Education:   views.EducationList(lang, education),
		},
	})
}

// BlogList renders the published posts.
func (h *FrontendHandler) BlogList(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context())

	posts, err := h.blog.ListPublished(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to load blog posts", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, "public/blog", render.TemplateData{
		Title: i18n.T(lang.String(), "blog.title"),
		Data:  BlogListData{Posts: views.Posts(lang, posts)},
	})
}

// BlogPost renders a published post by slug.
func (h *FrontendHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context())
	slug := chi.URLParam(r, "slug")

	row, err := h.blog.GetPublishedBySlug(r.Context(), slug)
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(w, r, NotFoundData{MessageKey: "error.post_not_found", BackURL: RouteBlog, BackKey: "blog.back"})
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load blog post", err, "slug", slug)
		return
	}

	post := views.NewPost(lang, row)
	page := &seo.PageData{
		Title:       post.Title,
		Summary:     post.Excerpt,
		Body:        post.Content,
		Path:        RouteBlog + "/" + post.Slug,
		Image:       post.CoverImage,
		PublishedAt: post.PublishedAt,
	}
	meta := seo.BuildMeta(page, h.siteURL, i18n.T(lang.String(), "site.name"))

	renderPage(w, r, h.renderer, http.StatusOK, "public/blog_detail", render.TemplateData{
		Title:           post.Title,
		MetaDescription: meta.Description,
		Data: PostData{
			Post:   post,
			Schema: seo.BuildArticleSchema(page, h.siteURL, i18n.Tag(lang.String()).String()),
		},
	})
}

// Store renders the published products.
func (h *FrontendHandler) Store(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context())

	products, err := h.products.ListPublished(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to load products", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, "public/store", render.TemplateData{
		Title: i18n.T(lang.String(), "store.title"),
		Data:  StoreData{Products: views.Products(lang, products)},
	})
}

// Product renders a published product by slug.
func (h *FrontendHandler) Product(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r.Context())
	slug := chi.URLParam(r, "slug")

	row, err := h.products.GetPublishedBySlug(r.Context(), slug)
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(w, r, NotFoundData{MessageKey: "error.product_not_found", BackURL: RouteStore, BackKey: "store.back"})
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load product", err, "slug", slug)
		return
	}

	product := views.NewProduct(lang, row)
	meta := seo.BuildMeta(&seo.PageData{
		Title: product.Name,
		Body:  product.Description,
		Path:  RouteStore + "/" + product.Slug,
		Image: product.Image,
	}, h.siteURL, i18n.T(lang.String(), "site.name"))

	renderPage(w, r, h.renderer, http.StatusOK, "public/store_detail", render.TemplateData{
		Title:           product.Name,
		MetaDescription: meta.Description,
		Data:            ProductData{Product: product},
	})
}

// NotFound renders the 404 page for unmatched routes.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, NotFoundData{MessageKey: "error.page_not_found", BackURL: RouteRoot, BackKey: "error.back_home"})
}

// Sitemap serves sitemap.xml with every published post and product.
func (h *FrontendHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.public.Bytes(r.Context(), cache.KeySitemap, h.buildSitemap)
	if err != nil {
		logAndInternalError(w, "failed to build sitemap", "error", err)
		return
	}

	w.Header().Set(HeaderContentType, "application/xml; charset=utf-8")
	_, _ = w.Write(data)
}

func (h *FrontendHandler) buildSitemap(ctx context.Context) ([]byte, error) {
	posts, err := h.blog.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	products, err := h.products.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	postEntries := make([]seo.SitemapEntry, 0, len(posts))
	for _, p := range posts {
		postEntries = append(postEntries, seo.SitemapEntry{Slug: p.Slug, UpdatedAt: p.UpdatedAt})
	}
	productEntries := make([]seo.SitemapEntry, 0, len(products))
	for _, p := range products {
		productEntries = append(productEntries, seo.SitemapEntry{Slug: p.Slug, UpdatedAt: p.UpdatedAt})
	}

	return seo.GenerateSitemap(h.siteURL, postEntries, productEntries)
}

// Robots serves robots.txt.
func (h *FrontendHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.BuildRobots(seo.RobotsConfig{SiteURL: h.siteURL})))
}

func (h *FrontendHandler) notFound(w http.ResponseWriter, r *http.Request, data NotFoundData) {
	renderPage(w, r, h.renderer, http.StatusNotFound, "errors/404", render.TemplateData{
		Title: i18n.T(middleware.GetLang(r.Context()).String(), "error.not_found_title"),
		Data:  data,
	})
}

// serverError logs err and renders the 500 page. A failed fetch is never
// shown as an empty page or as not found.
func (h *FrontendHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	slog.Error(msg, append([]any{"error", err}, args...)...)
	renderPage(w, r, h.renderer, http.StatusInternalServerError, "errors/500", render.TemplateData{
		Title: i18n.T(middleware.GetLang(r.Context()).String(), "error.server_title"),
	})
}
