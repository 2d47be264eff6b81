// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/olegiv/folio/internal/util"
)

// PrepareSlug returns the slug to store for a draft. A record without an
// identifier gets a slug derived from its title when none was typed; an
// existing record keeps whatever was submitted, even if empty.
func PrepareSlug(slug, title string, isNew bool) string {
	slug = strings.TrimSpace(slug)
	if slug == "" && isNew {
		return util.Slugify(title)
	}
	return slug
}

var slugRule = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" || util.IsValidSlug(s) {
		return nil
	}
	return errors.New("must contain only lowercase letters, numbers and single hyphens")
})

var linkRule = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return util.ValidateLinkURL(s)
})
