// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EducationFields is the editable form of an education entry.
type EducationFields struct {
	DegreeEN      string `json:"degree_en"`
	DegreeVN      string `json:"degree_vn"`
	School        string `json:"school"`
	Period        string `json:"period"`
	DescriptionEN string `json:"description_en"`
	DescriptionVN string `json:"description_vn"`
	SortOrder     int64  `json:"sort_order"`
}

// Validate implements validation.Validatable.
func (f EducationFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.DegreeEN, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&f.DegreeVN, validation.RuneLength(0, 200)),
		validation.Field(&f.School, validation.Required, validation.RuneLength(0, 200)),
		validation.Field(&f.Period, validation.Required, validation.RuneLength(0, 100)),
	)
}

// Trimmed returns the fields with surrounding whitespace removed.
func (f EducationFields) Trimmed() EducationFields {
	f.DegreeEN = strings.TrimSpace(f.DegreeEN)
	f.DegreeVN = strings.TrimSpace(f.DegreeVN)
	f.School = strings.TrimSpace(f.School)
	f.Period = strings.TrimSpace(f.Period)
	f.DescriptionEN = strings.TrimSpace(f.DescriptionEN)
	f.DescriptionVN = strings.TrimSpace(f.DescriptionVN)
	return f
}
