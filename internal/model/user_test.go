// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestIsValidRole(t *testing.T) {
	for role, want := range map[string]bool{
		RoleAdmin: true,
		RoleUser:  true,
		"editor":  false,
		"Admin":   false,
		"":        false,
	} {
		if got := IsValidRole(role); got != want {
			t.Errorf("IsValidRole(%q) = %v, want %v", role, got, want)
		}
	}
}
