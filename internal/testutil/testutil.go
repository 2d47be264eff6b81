// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers: a migrated SQLite
// database, a seeded admin account and quiet loggers.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/olegiv/folio/internal/store"
)

// TestLogger logs warnings and errors to stderr.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestLoggerSilent discards everything.
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestDB opens a database file in t.TempDir() with all migrations applied.
// The returned cleanup closes it; the file goes with the temp dir.
func TestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "folio-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() { _ = db.Close() }
}

// SeedAdmin creates the admin account email/password and returns it.
func SeedAdmin(t *testing.T, db *sql.DB, email, password string) store.User {
	t.Helper()

	ctx := context.Background()
	if err := store.Seed(ctx, db, store.AdminSeed{Email: email, Password: password, Name: "Test Admin"}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	user, err := store.New(db).GetUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	return user
}
