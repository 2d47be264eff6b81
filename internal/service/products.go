// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// ProductService manages store products.
type ProductService struct {
	queries *store.Queries
	now     Clock
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{
		queries: store.New(db),
		now:     systemClock,
	}
}

// List returns every product, newest first.
func (s *ProductService) List(ctx context.Context) ([]store.Product, error) {
	return s.queries.ListProducts(ctx)
}

// ListPublished returns published products, newest first.
func (s *ProductService) ListPublished(ctx context.Context) ([]store.Product, error) {
	return s.queries.ListPublishedProducts(ctx)
}

// Get returns one product or ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id string) (store.Product, error) {
	row, err := s.queries.GetProductByID(ctx, id)
	return row, notFound(err)
}

// GetBySlug returns a product by slug regardless of its published state.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (store.Product, error) {
	row, err := s.queries.GetProductBySlug(ctx, slug)
	return row, notFound(err)
}

// GetPublishedBySlug returns a published product by slug.
func (s *ProductService) GetPublishedBySlug(ctx context.Context, slug string) (store.Product, error) {
	row, err := s.queries.GetPublishedProductBySlug(ctx, slug)
	return row, notFound(err)
}

// Upsert inserts a new draft or updates the row of an existing one.
func (s *ProductService) Upsert(ctx context.Context, d model.Draft[model.ProductFields]) (store.Product, error) {
	f := d.Fields().Trimmed()
	_, isNew := d.(model.NewDraft[model.ProductFields])
	f.Slug = model.PrepareSlug(f.Slug, f.NameEN, isNew)
	if err := f.Validate(); err != nil {
		return store.Product{}, err
	}

	now := s.now()
	switch d := d.(type) {
	case model.NewDraft[model.ProductFields]:
		row, err := s.queries.CreateProduct(ctx, store.CreateProductParams{
			ID:            uuid.NewString(),
			NameEn:        util.NullStringFromValue(f.NameEN),
			NameVn:        util.NullStringFromValue(f.NameVN),
			Slug:          f.Slug,
			DescriptionEn: util.NullStringFromValue(f.DescriptionEN),
			DescriptionVn: util.NullStringFromValue(f.DescriptionVN),
			Price:         f.Price,
			Currency:      f.Currency,
			Image:         util.NullStringFromValue(f.Image),
			FileUrl:       util.NullStringFromValue(f.FileURL),
			ProductType:   f.ProductType,
			Published:     f.Published,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if isUniqueViolation(err) {
			return store.Product{}, ErrSlugTaken
		}
		if err != nil {
			return store.Product{}, fmt.Errorf("creating product: %w", err)
		}
		return row, nil
	case model.ExistingDraft[model.ProductFields]:
		row, err := s.queries.UpdateProduct(ctx, store.UpdateProductParams{
			NameEn:        util.NullStringFromValue(f.NameEN),
			NameVn:        util.NullStringFromValue(f.NameVN),
			Slug:          f.Slug,
			DescriptionEn: util.NullStringFromValue(f.DescriptionEN),
			DescriptionVn: util.NullStringFromValue(f.DescriptionVN),
			Price:         f.Price,
			Currency:      f.Currency,
			Image:         util.NullStringFromValue(f.Image),
			FileUrl:       util.NullStringFromValue(f.FileURL),
			ProductType:   f.ProductType,
			Published:     f.Published,
			UpdatedAt:     now,
			ID:            d.ID,
		})
		if isUniqueViolation(err) {
			return store.Product{}, ErrSlugTaken
		}
		if err != nil {
			return store.Product{}, fmt.Errorf("updating product %s: %w", d.ID, notFound(err))
		}
		return row, nil
	}
	return store.Product{}, fmt.Errorf("unsupported draft %T", d)
}

// TogglePublish flips the published flag only. No timestamp is touched.
func (s *ProductService) TogglePublish(ctx context.Context, id string) (store.Product, error) {
	row, err := s.queries.ToggleProductPublished(ctx, id)
	if err != nil {
		return store.Product{}, fmt.Errorf("toggling product %s: %w", id, notFound(err))
	}
	return row, nil
}

// Delete removes a product. A missing id is not an error.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.queries.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}
	return nil
}

// Count returns the number of products.
func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.queries.CountProducts(ctx)
}

// RowID returns the identifier of row.
func (s *ProductService) RowID(row store.Product) string { return row.ID }

// Blank returns the fields of an empty create dialog with the default
// currency and product type preselected.
func (s *ProductService) Blank() model.ProductFields {
	return model.NewProductFields()
}

// EditDraft copies row into a draft.
func (s *ProductService) EditDraft(row store.Product) model.Draft[model.ProductFields] {
	return model.Existing(row.ID, model.ProductFields{
		NameEN:        util.StringFromNull(row.NameEn),
		NameVN:        util.StringFromNull(row.NameVn),
		Slug:          row.Slug,
		DescriptionEN: util.StringFromNull(row.DescriptionEn),
		DescriptionVN: util.StringFromNull(row.DescriptionVn),
		Price:         row.Price,
		Currency:      row.Currency,
		Image:         util.StringFromNull(row.Image),
		FileURL:       util.StringFromNull(row.FileUrl),
		ProductType:   row.ProductType,
		Published:     row.Published,
	})
}
