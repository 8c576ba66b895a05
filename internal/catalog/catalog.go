// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog writes badge records in the shared JSON catalog format
// consumed by the community site.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minibadge/badge-engine/pkg/types"
)

// Format writes badges as a two-space-indented JSON array to w. HTML
// escaping is off so image URLs keep their literal & and = characters. A
// nil slice still encodes as an empty array, never null.
func Format(badges []types.Badge, w io.Writer) error {
	if badges == nil {
		badges = []types.Badge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(badges)
}

// Write creates the output file, and its parent directory if missing, and
// writes the badge array. Array order is input order: page then block order
// for guide runs, row order for form runs.
func Write(path string, badges []types.Badge) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Format(badges, f); err != nil {
		f.Close()
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return f.Close()
}
