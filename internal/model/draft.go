// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Draft is the form state of a record in an admin dialog. A draft either has
// no identifier yet (NewDraft) or belongs to a stored row (ExistingDraft);
// saving a NewDraft inserts, saving an ExistingDraft updates that row only.
type Draft[F any] interface {
	Fields() F
	isDraft()
}

// NewDraft holds the fields of a record that has not been stored yet.
type NewDraft[F any] struct {
	Data F
}

// ExistingDraft holds edited fields of the stored row ID.
type ExistingDraft[F any] struct {
	ID   string
	Data F
}

// New returns a draft for a record to be created.
func New[F any](fields F) Draft[F] {
	return NewDraft[F]{Data: fields}
}

// Existing returns a draft for the stored record id.
func Existing[F any](id string, fields F) Draft[F] {
	return ExistingDraft[F]{ID: id, Data: fields}
}

// Fields returns the draft's form fields.
func (d NewDraft[F]) Fields() F { return d.Data }

// Fields returns the draft's form fields.
func (d ExistingDraft[F]) Fields() F { return d.Data }

func (NewDraft[F]) isDraft()      {}
func (ExistingDraft[F]) isDraft() {}

// DraftID returns the identifier of an existing draft.
func DraftID[F any](d Draft[F]) (string, bool) {
	if e, ok := d.(ExistingDraft[F]); ok {
		return e.ID, true
	}
	return "", false
}
