// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package console implements the admin resource screen: a list of rows with
// a create/edit dialog bound to a typed draft. A Screen is built per request
// and driven through its transitions by the admin handlers.
package console

import (
	"context"
	"errors"

	"github.com/olegiv/folio/internal/model"
)

// State is the screen state.
type State int

// Screen states.
const (
	StateLoading State = iota
	StateList
	StateDialog
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateList:
		return "list"
	case StateDialog:
		return "dialog"
	}
	return "unknown"
}

// Mode tells whether an open dialog creates or edits a record.
type Mode int

// Dialog modes.
const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	}
	return ""
}

var (
	// ErrNoDialog is returned by Save when no dialog is open.
	ErrNoDialog = errors.New("no dialog is open")
	// ErrRowNotFound is returned by Edit for an id that is not in the list.
	ErrRowNotFound = errors.New("record not found")
	// ErrNotPublishable is returned by TogglePublish for resources without a publish flag.
	ErrNotPublishable = errors.New("resource cannot be published")
)

// Resource is the store side of a screen.
type Resource[R, F any] interface {
	List(ctx context.Context) ([]R, error)
	Upsert(ctx context.Context, d model.Draft[F]) (R, error)
	Delete(ctx context.Context, id string) error
	RowID(row R) string
	Blank() F
	EditDraft(row R) model.Draft[F]
}

// Publisher is implemented by resources with a publish flag.
type Publisher[R any] interface {
	TogglePublish(ctx context.Context, id string) (R, error)
}

// Screen is the state of one admin resource screen.
type Screen[R, F any] struct {
	res   Resource[R, F]
	state State
	rows  []R
	draft model.Draft[F]
	err   error
}

// NewScreen returns a screen in the loading state.
func NewScreen[R, F any](res Resource[R, F]) *Screen[R, F] {
	return &Screen[R, F]{res: res, state: StateLoading}
}

// Mount fetches the list. A fetch error leaves an empty list and the error set.
func (s *Screen[R, F]) Mount(ctx context.Context) {
	s.refresh(ctx)
	if s.state == StateLoading {
		s.state = StateList
	}
}

// AddNew opens the dialog with an empty draft.
func (s *Screen[R, F]) AddNew() {
	s.Open(model.New(s.res.Blank()))
}

// Edit opens the dialog with a draft copied from the listed row id.
func (s *Screen[R, F]) Edit(id string) error {
	for _, row := range s.rows {
		if s.res.RowID(row) == id {
			s.Open(s.res.EditDraft(row))
			return nil
		}
	}
	s.err = ErrRowNotFound
	return ErrRowNotFound
}

// Open opens the dialog on d, replacing any open draft.
func (s *Screen[R, F]) Open(d model.Draft[F]) {
	s.draft = d
	s.state = StateDialog
}

// Change replaces the fields of the open draft, keeping its identity.
func (s *Screen[R, F]) Change(fields F) {
	switch d := s.draft.(type) {
	case model.NewDraft[F]:
		s.draft = model.New(fields)
	case model.ExistingDraft[F]:
		s.draft = model.Existing(d.ID, fields)
	}
}

// Close closes the dialog and discards the draft.
func (s *Screen[R, F]) Close() {
	s.draft = nil
	if s.state == StateDialog {
		s.state = StateList
	}
}

// Save stores the open draft. On success the dialog closes and the list is
// fetched again; on failure the dialog stays open with the draft unchanged.
func (s *Screen[R, F]) Save(ctx context.Context) error {
	if s.state != StateDialog || s.draft == nil {
		return ErrNoDialog
	}
	if _, err := s.res.Upsert(ctx, s.draft); err != nil {
		s.err = err
		return err
	}
	s.err = nil
	s.Close()
	s.refresh(ctx)
	return nil
}

// Delete removes row id and fetches the list again. If the delete call
// fails the error is kept and the list is left as it was.
func (s *Screen[R, F]) Delete(ctx context.Context, id string) error {
	if err := s.res.Delete(ctx, id); err != nil {
		s.err = err
		return err
	}
	s.err = nil
	s.refresh(ctx)
	return nil
}

// TogglePublish flips the publish flag of row id and fetches the list again.
func (s *Screen[R, F]) TogglePublish(ctx context.Context, id string) error {
	p, ok := s.res.(Publisher[R])
	if !ok {
		return ErrNotPublishable
	}
	if _, err := p.TogglePublish(ctx, id); err != nil {
		s.err = err
		return err
	}
	s.err = nil
	s.refresh(ctx)
	return nil
}

func (s *Screen[R, F]) refresh(ctx context.Context) {
	rows, err := s.res.List(ctx)
	if err != nil {
		s.rows = nil
		s.err = err
		return
	}
	s.rows = rows
}

// State returns the current state.
func (s *Screen[R, F]) State() State { return s.state }

// Rows returns the listed rows.
func (s *Screen[R, F]) Rows() []R { return s.rows }

// Err returns the last error surfaced by a transition.
func (s *Screen[R, F]) Err() error { return s.err }

// Draft returns the open draft.
func (s *Screen[R, F]) Draft() (model.Draft[F], bool) {
	return s.draft, s.draft != nil
}

// Mode returns the mode of the open dialog, ModeNone when closed.
func (s *Screen[R, F]) Mode() Mode {
	switch s.draft.(type) {
	case model.NewDraft[F]:
		return ModeCreate
	case model.ExistingDraft[F]:
		return ModeEdit
	}
	return ModeNone
}

// DraftID returns the identifier of the record being edited, "" otherwise.
func (s *Screen[R, F]) DraftID() string {
	if s.draft == nil {
		return ""
	}
	id, _ := model.DraftID(s.draft)
	return id
}

// Publishable reports whether the resource has a publish flag.
func (s *Screen[R, F]) Publishable() bool {
	_, ok := s.res.(Publisher[R])
	return ok
}
