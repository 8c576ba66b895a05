// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import "testing"

func TestExtractFields(t *testing.T) {
	block := []string{
		"My Badge",
		"Designed By: Alice",
		"Fun fact",
		"DIFFICULTY: HOW DO I GET ONE?",
		"BEGINNER Ask Alice",
		"RARITY:",
		"Rare",
		"ASSEMBLY INSTRUCTIONS:",
		"Solder it",
		"BOARD/LED TYPE",
	}

	f, ok := ExtractFields(block)
	if !ok {
		t.Fatal("block should be accepted")
	}

	want := Fields{
		Title:                 "My Badge",
		Author:                "Alice",
		Description:           "Fun fact",
		SolderingDifficulty:   "Beginner",
		Rarity:                "Rare",
		HowToAcquire:          "Ask Alice",
		SolderingInstructions: "Solder it",
	}
	if f != want {
		t.Errorf("ExtractFields = %+v, want %+v", f, want)
	}
}

func TestExtractFieldsRejections(t *testing.T) {
	tests := []struct {
		name  string
		block []string
	}{
		{"empty block", nil},
		{"title and marker only", []string{"Some Title", "BOARD/LED TYPE"}},
		{"marker only", []string{"BOARD/LED TYPE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f, ok := ExtractFields(tt.block); ok {
				t.Errorf("block accepted with fields %+v", f)
			}
		})
	}
}

func TestExtractFieldsMissingAnchors(t *testing.T) {
	// A description alone carries the block; every anchored field stays
	// empty without rejecting the record.
	block := []string{"Mystery Badge", "A badge of unknown provenance", "BOARD/LED TYPE"}
	f, ok := ExtractFields(block)
	if !ok {
		t.Fatal("block should be accepted")
	}
	if f.Title != "Mystery Badge" {
		t.Errorf("title = %q", f.Title)
	}
	if f.Description != "A badge of unknown provenance" {
		t.Errorf("description = %q", f.Description)
	}
	if f.Author != "" || f.SolderingDifficulty != "" || f.Rarity != "" || f.HowToAcquire != "" || f.SolderingInstructions != "" {
		t.Errorf("anchored fields should be empty, got %+v", f)
	}
}

func TestExtractFieldsMultiLine(t *testing.T) {
	block := []string{
		"Stack Badge",
		"Designed By: Bob",
		"Line one",
		"Line two",
		"DIFFICULTY: HOW DO I GET ONE?",
		"ADVANCED Trade at the village",
		"ASSEMBLY INSTRUCTIONS:",
		"Step one",
		"Step two",
		"BOARD/LED TYPE",
	}
	f, ok := ExtractFields(block)
	if !ok {
		t.Fatal("block should be accepted")
	}
	if f.Description != "Line one\nLine two" {
		t.Errorf("description = %q", f.Description)
	}
	if f.SolderingDifficulty != "Advanced" {
		t.Errorf("difficulty = %q", f.SolderingDifficulty)
	}
	if f.HowToAcquire != "Trade at the village" {
		t.Errorf("howToAcquire = %q", f.HowToAcquire)
	}
	if f.SolderingInstructions != "Step one\nStep two" {
		t.Errorf("instructions = %q", f.SolderingInstructions)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"BEGINNER", "Beginner"},
		{"RARE", "Rare"},
		{"ULTRA RARE", "Ultra rare"},
		{"beginner", "Beginner"},
		{"", ""},
		{"X", "X"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindAnchor(t *testing.T) {
	lines := []string{"Title", "has RARITY: inline", "RARITY: header", "DIFFICULTY: x HOW DO I GET ONE?"}

	// A prefix anchor skips lines that merely contain its token.
	idx, ok := findAnchor(lines, rarityAnchor)
	if !ok || idx != 2 {
		t.Errorf("rarity anchor at %d (ok=%v), want 2", idx, ok)
	}

	// A token anchor needs every token on one line.
	idx, ok = findAnchor(lines, difficultyAnchor)
	if !ok || idx != 3 {
		t.Errorf("difficulty anchor at %d (ok=%v), want 3", idx, ok)
	}

	if _, ok := findAnchor(lines[:1], difficultyAnchor); ok {
		t.Error("difficulty anchor should be absent")
	}
}
