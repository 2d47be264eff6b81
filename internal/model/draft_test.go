// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestDraftVariants(t *testing.T) {
	fields := EducationFields{DegreeEN: "MA International Relations", School: "DAV", Period: "2015 - 2019"}

	created := New(fields)
	if _, ok := DraftID(created); ok {
		t.Error("New draft should not carry an id")
	}
	if created.Fields() != fields {
		t.Errorf("New(fields).Fields() = %+v, want %+v", created.Fields(), fields)
	}

	edited := Existing("3f2a", fields)
	id, ok := DraftID(edited)
	if !ok || id != "3f2a" {
		t.Errorf("DraftID(Existing) = %q, %v", id, ok)
	}

	switch d := edited.(type) {
	case ExistingDraft[EducationFields]:
		if d.ID != "3f2a" {
			t.Errorf("ExistingDraft.ID = %q", d.ID)
		}
	default:
		t.Errorf("Existing() returned %T", edited)
	}
}
