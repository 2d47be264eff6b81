// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"testing"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		input  string
		want   Lang
		wantOK bool
	}{
		{"en", LangEN, true},
		{"EN", LangEN, true},
		{"vn", LangVN, true},
		{"vi", LangVN, true},
		{" vn ", LangVN, true},
		{"ru", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLang(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLang(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLangPick(t *testing.T) {
	en := sql.NullString{String: "Executive Assistant", Valid: true}
	vn := sql.NullString{String: "Trợ lý điều hành", Valid: true}
	null := sql.NullString{}

	tests := []struct {
		name string
		lang Lang
		en   sql.NullString
		vn   sql.NullString
		want string
	}{
		{"english", LangEN, en, vn, "Executive Assistant"},
		{"vietnamese", LangVN, en, vn, "Trợ lý điều hành"},
		{"vietnamese missing does not fall back", LangVN, en, null, ""},
		{"english missing does not fall back", LangEN, null, vn, ""},
		{"both missing", LangVN, null, null, ""},
		{"unknown lang reads english", Lang("fr"), en, vn, "Executive Assistant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lang.Pick(tt.en, tt.vn); got != tt.want {
				t.Errorf("Pick() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLangPickLines(t *testing.T) {
	en := []string{"a", "b"}
	vn := []string{"x"}

	if got := LangVN.PickLines(en, vn); len(got) != 1 || got[0] != "x" {
		t.Errorf("PickLines(vn) = %v", got)
	}
	if got := LangVN.PickLines(en, nil); got != nil {
		t.Errorf("PickLines(vn) with no vietnamese lines = %v, want nil", got)
	}
	if got := LangEN.PickLines(en, vn); len(got) != 2 {
		t.Errorf("PickLines(en) = %v", got)
	}
}
