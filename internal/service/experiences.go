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

// ExperienceService manages the work experience timeline.
type ExperienceService struct {
	queries *store.Queries
	now     Clock
}

// NewExperienceService creates a new ExperienceService.
func NewExperienceService(db *sql.DB) *ExperienceService {
	return &ExperienceService{
		queries: store.New(db),
		now:     systemClock,
	}
}

// List returns all experiences by sort order, ties in insertion order.
func (s *ExperienceService) List(ctx context.Context) ([]store.Experience, error) {
	return s.queries.ListExperiences(ctx)
}

// Get returns one experience or ErrNotFound.
func (s *ExperienceService) Get(ctx context.Context, id string) (store.Experience, error) {
	row, err := s.queries.GetExperienceByID(ctx, id)
	return row, notFound(err)
}

// Upsert inserts a new draft or updates the row of an existing one.
func (s *ExperienceService) Upsert(ctx context.Context, d model.Draft[model.ExperienceFields]) (store.Experience, error) {
	f := d.Fields().Trimmed()
	if err := f.Validate(); err != nil {
		return store.Experience{}, err
	}

	now := s.now()
	switch d := d.(type) {
	case model.NewDraft[model.ExperienceFields]:
		row, err := s.queries.CreateExperience(ctx, store.CreateExperienceParams{
			ID:           uuid.NewString(),
			RoleEn:       util.NullStringFromValue(f.RoleEN),
			RoleVn:       util.NullStringFromValue(f.RoleVN),
			Company:      f.Company,
			Location:     util.NullStringFromValue(f.Location),
			Period:       f.Period,
			HighlightsEn: util.NullLines(f.HighlightsEN),
			HighlightsVn: util.NullLines(f.HighlightsVN),
			SortOrder:    f.SortOrder,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return store.Experience{}, fmt.Errorf("creating experience: %w", err)
		}
		return row, nil
	case model.ExistingDraft[model.ExperienceFields]:
		row, err := s.queries.UpdateExperience(ctx, store.UpdateExperienceParams{
			RoleEn:       util.NullStringFromValue(f.RoleEN),
			RoleVn:       util.NullStringFromValue(f.RoleVN),
			Company:      f.Company,
			Location:     util.NullStringFromValue(f.Location),
			Period:       f.Period,
			HighlightsEn: util.NullLines(f.HighlightsEN),
			HighlightsVn: util.NullLines(f.HighlightsVN),
			SortOrder:    f.SortOrder,
			UpdatedAt:    now,
			ID:           d.ID,
		})
		if err != nil {
			return store.Experience{}, fmt.Errorf("updating experience %s: %w", d.ID, notFound(err))
		}
		return row, nil
	}
	return store.Experience{}, fmt.Errorf("unsupported draft %T", d)
}

// Delete removes an experience. A missing id is not an error.
func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	if err := s.queries.DeleteExperience(ctx, id); err != nil {
		return fmt.Errorf("deleting experience %s: %w", id, err)
	}
	return nil
}

// Count returns the number of experiences.
func (s *ExperienceService) Count(ctx context.Context) (int64, error) {
	return s.queries.CountExperiences(ctx)
}

// RowID returns the identifier of row.
func (s *ExperienceService) RowID(row store.Experience) string { return row.ID }

// Blank returns the fields of an empty create dialog.
func (s *ExperienceService) Blank() model.ExperienceFields {
	return model.ExperienceFields{}
}

// EditDraft copies row into a draft, flattening highlights into text blocks.
func (s *ExperienceService) EditDraft(row store.Experience) model.Draft[model.ExperienceFields] {
	return model.Existing(row.ID, model.ExperienceFields{
		RoleEN:       util.StringFromNull(row.RoleEn),
		RoleVN:       util.StringFromNull(row.RoleVn),
		Company:      row.Company,
		Location:     util.StringFromNull(row.Location),
		Period:       row.Period,
		HighlightsEN: util.JoinLines(util.LinesFromNull(row.HighlightsEn)),
		HighlightsVN: util.JoinLines(util.LinesFromNull(row.HighlightsVn)),
		SortOrder:    row.SortOrder,
	})
}
