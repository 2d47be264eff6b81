// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/folio/internal/auth"
	"github.com/olegiv/folio/internal/model"
)

// Default admin account created when no credentials are configured.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// AdminSeed describes the admin account to create on an empty database.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// Seed creates the admin account and its admin role if the account does not exist yet.
func Seed(ctx context.Context, db *sql.DB, admin AdminSeed) error {
	queries := New(db)

	if admin.Email == "" {
		admin.Email = DefaultAdminEmail
	}
	if admin.Password == "" {
		admin.Password = DefaultAdminPassword
	}
	if admin.Name == "" {
		admin.Name = DefaultAdminName
	}

	_, err := queries.GetUserByEmail(ctx, admin.Email)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		ID:           uuid.NewString(),
		Email:        admin.Email,
		PasswordHash: passwordHash,
		Name:         admin.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	if err := queries.CreateUserRole(ctx, CreateUserRoleParams{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      model.RoleAdmin,
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("assigning admin role: %w", err)
	}

	slog.Info("created admin user", "id", user.ID, "email", user.Email)
	if admin.Password == DefaultAdminPassword {
		slog.Warn("admin user has the default password, change it before going live", "email", user.Email)
	}

	return nil
}
