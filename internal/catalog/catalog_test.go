// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minibadge/badge-engine/pkg/types"
)

func TestFormat_FieldOrder(t *testing.T) {
	badges := []types.Badge{
		{
			Title:               "My Badge",
			Author:              "Alice",
			FrontImageURL:       "images/my-badge-front.jpg",
			Description:         "Fun",
			SolderingDifficulty: "Beginner",
			Category:            "Personal",
			ConferenceYear:      "2025",
			HowToAcquire:        "Ask Alice",
			Rarity:              "Rare",
		},
	}

	var buf bytes.Buffer
	if err := Format(badges, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	want := `[
  {
    "title": "My Badge",
    "author": "Alice",
    "profilePictureUrl": "",
    "frontImageUrl": "images/my-badge-front.jpg",
    "backImageUrl": "",
    "description": "Fun",
    "specialInstructions": "",
    "solderingInstructions": "",
    "solderingDifficulty": "Beginner",
    "quantityMade": 0,
    "category": "Personal",
    "conferenceYear": "2025",
    "boardHouse": "",
    "howToAcquire": "Ask Alice",
    "rarity": "Rare",
    "timestamp": ""
  }
]
`
	if got := buf.String(); got != want {
		t.Errorf("catalog output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_EmptyAndNil(t *testing.T) {
	for _, badges := range [][]types.Badge{nil, {}} {
		var buf bytes.Buffer
		if err := Format(badges, &buf); err != nil {
			t.Fatalf("Format: %v", err)
		}
		if got := buf.String(); got != "[]\n" {
			t.Errorf("empty catalog = %q, want %q", got, "[]\n")
		}
	}
}

func TestFormat_NoHTMLEscaping(t *testing.T) {
	badges := []types.Badge{
		{Title: "T", FrontImageURL: "https://example.com/img?id=1&size=big"},
	}

	var buf bytes.Buffer
	if err := Format(badges, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(buf.String(), `\u0026`) {
		t.Error("ampersand should not be escaped in URLs")
	}
	if !strings.Contains(buf.String(), "id=1&size=big") {
		t.Error("URL should appear verbatim in output")
	}
}

func TestWrite_CreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "nested", "badges.json")

	if err := Write(path, []types.Badge{{Title: "T"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `"title": "T"`) {
		t.Error("output file should contain the badge")
	}
}
