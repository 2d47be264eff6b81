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

// EducationService manages education entries.
type EducationService struct {
	queries *store.Queries
	now     Clock
}

// NewEducationService creates a new EducationService.
func NewEducationService(db *sql.DB) *EducationService {
	return &EducationService{
		queries: store.New(db),
		now:     systemClock,
	}
}

// List returns all education entries by sort order.
func (s *EducationService) List(ctx context.Context) ([]store.Education, error) {
	return s.queries.ListEducation(ctx)
}

// Get returns one entry or ErrNotFound.
func (s *EducationService) Get(ctx context.Context, id string) (store.Education, error) {
	row, err := s.queries.GetEducationByID(ctx, id)
	return row, notFound(err)
}

// Upsert inserts a new draft or updates the row of an existing one.
func (s *EducationService) Upsert(ctx context.Context, d model.Draft[model.EducationFields]) (store.Education, error) {
	f := d.Fields().Trimmed()
	if err := f.Validate(); err != nil {
		return store.Education{}, err
	}

	now := s.now()
	switch d := d.(type) {
	case model.NewDraft[model.EducationFields]:
		row, err := s.queries.CreateEducation(ctx, store.CreateEducationParams{
			ID:            uuid.NewString(),
			DegreeEn:      util.NullStringFromValue(f.DegreeEN),
			DegreeVn:      util.NullStringFromValue(f.DegreeVN),
			School:        f.School,
			Period:        f.Period,
			DescriptionEn: util.NullStringFromValue(f.DescriptionEN),
			DescriptionVn: util.NullStringFromValue(f.DescriptionVN),
			SortOrder:     f.SortOrder,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return store.Education{}, fmt.Errorf("creating education: %w", err)
		}
		return row, nil
	case model.ExistingDraft[model.EducationFields]:
		row, err := s.queries.UpdateEducation(ctx, store.UpdateEducationParams{
			DegreeEn:      util.NullStringFromValue(f.DegreeEN),
			DegreeVn:      util.NullStringFromValue(f.DegreeVN),
			School:        f.School,
			Period:        f.Period,
			DescriptionEn: util.NullStringFromValue(f.DescriptionEN),
			DescriptionVn: util.NullStringFromValue(f.DescriptionVN),
			SortOrder:     f.SortOrder,
			UpdatedAt:     now,
			ID:            d.ID,
		})
		if err != nil {
			return store.Education{}, fmt.Errorf("updating education %s: %w", d.ID, notFound(err))
		}
		return row, nil
	}
	return store.Education{}, fmt.Errorf("unsupported draft %T", d)
}

// Delete removes an entry. A missing id is not an error.
func (s *EducationService) Delete(ctx context.Context, id string) error {
	if err := s.queries.DeleteEducation(ctx, id); err != nil {
		return fmt.Errorf("deleting education %s: %w", id, err)
	}
	return nil
}

// Count returns the number of education entries.
func (s *EducationService) Count(ctx context.Context) (int64, error) {
	return s.queries.CountEducation(ctx)
}

// RowID returns the identifier of row.
func (s *EducationService) RowID(row store.Education) string { return row.ID }

// Blank returns the fields of an empty create dialog.
func (s *EducationService) Blank() model.EducationFields {
	return model.EducationFields{}
}

// EditDraft copies row into a draft.
func (s *EducationService) EditDraft(row store.Education) model.Draft[model.EducationFields] {
	return model.Existing(row.ID, model.EducationFields{
		DegreeEN:      util.StringFromNull(row.DegreeEn),
		DegreeVN:      util.StringFromNull(row.DegreeVn),
		School:        row.School,
		Period:        row.Period,
		DescriptionEN: util.StringFromNull(row.DescriptionEn),
		DescriptionVN: util.StringFromNull(row.DescriptionVn),
		SortOrder:     row.SortOrder,
	})
}
