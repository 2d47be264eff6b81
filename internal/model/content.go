// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "strings"

// ContentSlot is one fixed, editable piece of home page copy.
type ContentSlot struct {
	Key       string
	Section   string
	Multiline bool
}

// Content slot keys.
const (
	ContentHeroTagline     = "hero_tagline"
	ContentHeroSubtitle    = "hero_subtitle"
	ContentHeroIntro       = "hero_intro"
	ContentAboutTitle      = "about_title"
	ContentAboutContent    = "about_content"
	ContentContactTitle    = "contact_title"
	ContentContactSubtitle = "contact_subtitle"
	ContentContactEmail    = "contact_email"
	ContentContactPhone    = "contact_phone"
	ContentContactLinkedIn = "contact_linkedin"
)

// ContentSlots lists every slot in admin form order.
var ContentSlots = []ContentSlot{
	{Key: ContentHeroTagline, Section: "hero"},
	{Key: ContentHeroSubtitle, Section: "hero"},
	{Key: ContentHeroIntro, Section: "hero", Multiline: true},
	{Key: ContentAboutTitle, Section: "about"},
	{Key: ContentAboutContent, Section: "about", Multiline: true},
	{Key: ContentContactTitle, Section: "contact"},
	{Key: ContentContactSubtitle, Section: "contact"},
	{Key: ContentContactEmail, Section: "contact"},
	{Key: ContentContactPhone, Section: "contact"},
	{Key: ContentContactLinkedIn, Section: "contact"},
}

// ContentSections lists slot sections in display order.
var ContentSections = []string{"hero", "about", "contact"}

// IsContentKey reports whether key names a known content slot.
func IsContentKey(key string) bool {
	for _, s := range ContentSlots {
		if s.Key == key {
			return true
		}
	}
	return false
}

// SlotsInSection returns the slots of one section.
func SlotsInSection(section string) []ContentSlot {
	var out []ContentSlot
	for _, s := range ContentSlots {
		if strings.EqualFold(s.Section, section) {
			out = append(out, s)
		}
	}
	return out
}

// ContentValue is the submitted bilingual value of one slot.
type ContentValue struct {
	Key     string
	ValueEN string
	ValueVN string
}
