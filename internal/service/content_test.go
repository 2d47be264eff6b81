// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/model"
)

func TestContentBulkSaveUpdateAndInsert(t *testing.T) {
	svc := NewContentService(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.BulkSave(ctx, []model.ContentValue{
		{Key: model.ContentHeroTagline, ValueEN: "Old tagline"},
	}))
	before, err := svc.Get(ctx, model.ContentHeroTagline)
	require.NoError(t, err)

	_, err = svc.Get(ctx, model.ContentAboutContent)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.BulkSave(ctx, []model.ContentValue{
		{Key: model.ContentHeroTagline, ValueEN: "New tagline", ValueVN: "Khẩu hiệu"},
		{Key: model.ContentAboutContent, ValueEN: "About me"},
	}))

	stored, err := svc.Map(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	hero := stored[model.ContentHeroTagline]
	assert.Equal(t, before.ID, hero.ID, "existing slot is updated in place")
	assert.Equal(t, "New tagline", hero.ValueEn.String)
	assert.Equal(t, "Khẩu hiệu", hero.ValueVn.String)

	about := stored[model.ContentAboutContent]
	assert.Equal(t, "About me", about.ValueEn.String)
	assert.False(t, about.ValueVn.Valid)
}

func TestContentBulkSaveTrimsValues(t *testing.T) {
	svc := NewContentService(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.BulkSave(ctx, []model.ContentValue{
		{Key: model.ContentContactEmail, ValueEN: "  me@example.com\n", ValueVN: " \t "},
	}))

	got, err := svc.Get(ctx, model.ContentContactEmail)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", got.ValueEn.String)
	assert.False(t, got.ValueVn.Valid, "a blank value is stored as NULL")
}

func TestContentBulkSavePartialFailure(t *testing.T) {
	svc := NewContentService(setupTestDB(t))
	ctx := context.Background()

	err := svc.BulkSave(ctx, []model.ContentValue{
		{Key: model.ContentHeroTagline, ValueEN: "saved"},
		{Key: "bogus", ValueEN: "x"},
		{Key: model.ContentContactEmail, ValueEN: "me@example.com"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")

	stored, err := svc.Map(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2, "slots before and after the failure are saved")
}

func TestContentValues(t *testing.T) {
	svc := NewContentService(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.BulkSave(ctx, []model.ContentValue{
		{Key: model.ContentAboutTitle, ValueEN: "About", ValueVN: "  "},
	}))

	values, err := svc.Values(ctx)
	require.NoError(t, err)
	require.Len(t, values, len(model.ContentSlots))
	for i, v := range values {
		assert.Equal(t, model.ContentSlots[i].Key, v.Key)
		if v.Key == model.ContentAboutTitle {
			assert.Equal(t, "About", v.ValueEN)
			assert.Equal(t, "", v.ValueVN)
		}
	}

	row, err := svc.Get(ctx, model.ContentAboutTitle)
	require.NoError(t, err)
	assert.False(t, row.ValueVn.Valid, "blank value is stored as NULL")
}
