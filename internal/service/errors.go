// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the resource operations behind the admin
// console, the public pages and the JSON API: listing, lookup, upsert of
// drafts, deletion and publish toggling on top of the generated store.
package service

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a row does not exist (or is not published
	// for the public lookups). It is never returned for transport failures.
	ErrNotFound = errors.New("not found")

	// ErrSlugTaken is returned when an insert or update collides with the
	// slug of another row.
	ErrSlugTaken = errors.New("slug is already in use")
)

// notFound converts sql.ErrNoRows into ErrNotFound and leaves other errors untouched.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Clock returns the current time. Services store times in UTC.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
