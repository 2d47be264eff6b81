// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MaxURLLength is the maximum allowed length for an image or file URL.
const MaxURLLength = 2048

// ValidateLinkURL checks a URL stored for an image, cover or downloadable file.
// It accepts absolute http(s) URLs and site-relative paths such as /uploads/cv.pdf.
func ValidateLinkURL(rawURL string) error {
	if len(rawURL) > MaxURLLength {
		return fmt.Errorf("URL exceeds maximum length of %d characters", MaxURLLength)
	}

	// Protocol-relative URLs would leave the site
	if strings.HasPrefix(rawURL, "//") || strings.HasPrefix(rawURL, `/\`) {
		return errors.New("URL must be absolute or start with a single slash")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	if parsedURL.Scheme == "" {
		if !strings.HasPrefix(rawURL, "/") {
			return errors.New("URL must be absolute or start with a single slash")
		}
		return nil
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must use http or https scheme")
	}

	if parsedURL.Hostname() == "" {
		return errors.New("URL must have a hostname")
	}

	return nil
}
