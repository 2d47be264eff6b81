// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain types shared by the store, services and
// handlers: languages, drafts, per-resource form fields and their validation.
package model

// User roles stored in user_roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
