// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/folio/internal/auth"
	"github.com/olegiv/folio/internal/model"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/util"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService authenticates admin users.
type UserService struct {
	queries *store.Queries
	now     Clock
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{
		queries: store.New(db),
		now:     systemClock,
	}
}

// Authenticate checks email and password and records the login time.
// Hashes made with outdated argon2 parameters are upgraded in place.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (store.User, error) {
	user, err := s.queries.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return store.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return store.User{}, fmt.Errorf("looking up user: %w", err)
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil || !valid {
		return store.User{}, ErrInvalidCredentials
	}

	now := s.now()
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, hashErr := auth.HashPassword(password); hashErr == nil {
			if err := s.queries.UpdateUserPassword(ctx, store.UpdateUserPasswordParams{
				PasswordHash: newHash,
				UpdatedAt:    now,
				ID:           user.ID,
			}); err != nil {
				slog.Warn("failed to rehash password", "user_id", user.ID, "error", err)
			}
		}
	}

	if err := s.queries.UpdateUserLastLogin(ctx, store.UpdateUserLastLoginParams{
		LastLoginAt: util.NullTimeFromValue(now),
		ID:          user.ID,
	}); err != nil {
		slog.Error("failed to update last login", "error", err, "user_id", user.ID)
	}

	return user, nil
}

// Get returns a user or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (store.User, error) {
	user, err := s.queries.GetUserByID(ctx, id)
	return user, notFound(err)
}

// Role returns the user's highest role, admin before user.
// A user without any role row gets model.RoleUser.
func (s *UserService) Role(ctx context.Context, userID string) (string, error) {
	roles, err := s.queries.ListUserRoles(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("listing roles: %w", err)
	}
	for _, r := range roles {
		if r.Role == model.RoleAdmin {
			return model.RoleAdmin, nil
		}
	}
	for _, r := range roles {
		if model.IsValidRole(r.Role) {
			return r.Role, nil
		}
	}
	return model.RoleUser, nil
}
