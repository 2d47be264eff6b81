// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package i18n provides the interface strings of the public site and the
// admin console in English and Vietnamese.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales
var localesFS embed.FS

// DefaultLanguage is used for unknown languages and missing keys.
const DefaultLanguage = "en"

// SupportedLanguages lists the language codes in URL and column form.
var SupportedLanguages = []string{"en", "vn"}

// languageTags maps our codes to BCP 47 tags. "vn" is the country code
// used in URLs and column names; the language itself is "vi".
var languageTags = map[string]language.Tag{
	"en": language.English,
	"vn": language.Vietnamese,
}

// Tag returns the BCP 47 tag of lang, or English when lang is unknown.
func Tag(lang string) language.Tag {
	if tag, ok := languageTags[lang]; ok {
		return tag
	}
	return language.English
}

// messageFile is the layout of locales/<lang>/messages.json.
type messageFile struct {
	Language string `json:"language"`
	Messages []struct {
		ID          string `json:"id"`
		Message     string `json:"message"`
		Translation string `json:"translation"`
	} `json:"messages"`
}

// Catalog holds the translations of every supported language.
type Catalog struct {
	messages map[string]map[string]string // lang -> id -> translation
	printers map[string]*message.Printer
}

// Load reads <lang>/messages.json from fsys for every supported language.
// Duplicate ids are an error.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		messages: make(map[string]map[string]string, len(SupportedLanguages)),
		printers: make(map[string]*message.Printer, len(SupportedLanguages)),
	}

	for _, lang := range SupportedLanguages {
		name := path.Join(lang, "messages.json")
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		var file messageFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		msgs := make(map[string]string, len(file.Messages))
		for _, m := range file.Messages {
			if _, dup := msgs[m.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate message id %q", name, m.ID)
			}
			msgs[m.ID] = m.Translation
		}

		c.messages[lang] = msgs
		c.printers[lang] = message.NewPrinter(Tag(lang))
	}

	return c, nil
}

// Missing returns the ids present in the default language but not in lang,
// sorted.
func (c *Catalog) Missing(lang string) []string {
	var missing []string
	for id := range c.messages[DefaultLanguage] {
		if _, ok := c.messages[lang][id]; !ok {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)
	return missing
}

// Len returns the number of messages loaded for lang.
func (c *Catalog) Len(lang string) int {
	return len(c.messages[lang])
}

// T translates key into lang, falling back to the default language and
// then to the key itself. args are formatted with lang's number format.
func (c *Catalog) T(lang, key string, args ...any) string {
	if _, ok := c.messages[lang]; !ok {
		lang = DefaultLanguage
	}

	text, ok := c.messages[lang][key]
	if !ok {
		if text, ok = c.messages[DefaultLanguage][key]; !ok {
			return key
		}
	}

	if len(args) == 0 {
		return text
	}
	return c.printers[lang].Sprintf(text, args...)
}

var (
	mu      sync.RWMutex
	catalog *Catalog
)

// Init loads the embedded catalog for T. Missing translations are logged
// when logger is set.
func Init(logger *slog.Logger) error {
	locales, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return err
	}
	c, err := Load(locales)
	if err != nil {
		return err
	}

	if logger != nil {
		for _, lang := range SupportedLanguages {
			if missing := c.Missing(lang); len(missing) > 0 {
				logger.Warn("missing translations", "language", lang, "keys", missing)
			}
		}
		logger.Info("i18n initialized", "languages", SupportedLanguages)
	}

	mu.Lock()
	catalog = c
	mu.Unlock()
	return nil
}

// T translates key into lang with the catalog loaded by Init. Before Init
// it returns key.
func T(lang, key string, args ...any) string {
	mu.RLock()
	c := catalog
	mu.RUnlock()

	if c == nil {
		return key
	}
	return c.T(lang, key, args...)
}
