// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ExperienceFields is the editable form of an experience entry.
// Highlights are edited as one line-delimited text block per language.
type ExperienceFields struct {
	RoleEN       string `json:"role_en"`
	RoleVN       string `json:"role_vn"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Period       string `json:"period"`
	HighlightsEN string `json:"highlights_en"`
	HighlightsVN string `json:"highlights_vn"`
	SortOrder    int64  `json:"sort_order"`
}

// Validate implements validation.Validatable.
func (f ExperienceFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.RoleEN, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&f.RoleVN, validation.RuneLength(0, 200)),
		validation.Field(&f.Company, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&f.Location, validation.RuneLength(0, 200)),
		validation.Field(&f.Period, validation.Required, validation.RuneLength(0, 100)),
	)
}

// Trimmed returns the fields with surrounding whitespace removed.
func (f ExperienceFields) Trimmed() ExperienceFields {
	f.RoleEN = strings.TrimSpace(f.RoleEN)
	f.RoleVN = strings.TrimSpace(f.RoleVN)
	f.Company = strings.TrimSpace(f.Company)
	f.Location = strings.TrimSpace(f.Location)
	f.Period = strings.TrimSpace(f.Period)
	f.HighlightsEN = strings.TrimSpace(f.HighlightsEN)
	f.HighlightsVN = strings.TrimSpace(f.HighlightsVN)
	return f
}
