// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the HTML templates, stylesheets and the admin quick
// guide into the binary.
package web

import "embed"

//go:embed all:templates
var Templates embed.FS

//go:embed static
var Static embed.FS

// Guide holds the admin dashboard quick guide, one Markdown file per language.
//
//go:embed guide
var Guide embed.FS
