// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// ContentService manages the fixed set of home page content slots.
type ContentService struct {
	queries *store.Queries
	now     Clock
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{
		queries: store.New(db),
		now:     systemClock,
	}
}

// List returns every stored slot value ordered by key.
func (s *ContentService) List(ctx context.Context) ([]store.SiteContent, error) {
	return s.queries.ListSiteContent(ctx)
}

// Map returns stored slot values keyed by slot key. Slots never saved are absent.
func (s *ContentService) Map(ctx context.Context) (map[string]store.SiteContent, error) {
	rows, err := s.queries.ListSiteContent(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]store.SiteContent, len(rows))
	for _, row := range rows {
		out[row.Key] = row
	}
	return out, nil
}

// Get returns one slot value or ErrNotFound.
func (s *ContentService) Get(ctx context.Context, key string) (store.SiteContent, error) {
	row, err := s.queries.GetSiteContentByKey(ctx, key)
	return row, notFound(err)
}

// Values returns the submitted form state of every slot, filled from the
// stored values.
func (s *ContentService) Values(ctx context.Context) ([]model.ContentValue, error) {
	stored, err := s.Map(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]model.ContentValue, 0, len(model.ContentSlots))
	for _, slot := range model.ContentSlots {
		row := stored[slot.Key]
		values = append(values, model.ContentValue{
			Key:     slot.Key,
			ValueEN: util.StringFromNull(row.ValueEn),
			ValueVN: util.StringFromNull(row.ValueVn),
		})
	}
	return values, nil
}

// BulkSave upserts each value in turn. A failing slot does not stop the
// remaining ones; slots saved before a failure stay saved and all failures
// are returned together after the loop.
func (s *ContentService) BulkSave(ctx context.Context, values []model.ContentValue) error {
	var errs []error
	for _, v := range values {
		if !model.IsContentKey(v.Key) {
			errs = append(errs, fmt.Errorf("unknown content key %q", v.Key))
			continue
		}

		now := s.now()
		_, err := s.queries.UpsertSiteContent(ctx, store.UpsertSiteContentParams{
			ID:        uuid.NewString(),
			Key:       v.Key,
			ValueEn:   util.NullStringFromTrimmed(v.ValueEN),
			ValueVn:   util.NullStringFromTrimmed(v.ValueVN),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("saving %s: %w", v.Key, err))
		}
	}
	return errors.Join(errs...)
}
