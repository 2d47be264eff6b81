// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, db, store.AdminSeed{Email: "admin@example.com", Password: "correct horse battery"}))

	svc := NewUserService(db)

	_, err := svc.Authenticate(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := svc.Authenticate(ctx, "admin@example.com", "correct horse battery")
	require.NoError(t, err)

	got, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.LastLoginAt.Valid)

	role, err := svc.Role(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	role, err = svc.Role(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, role)

	_, err = svc.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}
