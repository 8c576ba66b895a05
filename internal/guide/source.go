// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"fmt"

	"github.com/minibadge/badge-engine/pkg/types"
)

// EmbeddedImage is one image embedded in a guide page: pixel dimensions
// plus file-ready bytes and the extension matching their encoding.
type EmbeddedImage struct {
	Width  int
	Height int
	Data   []byte
	Ext    string
}

// Source yields per-page text and embedded images from an opened build
// guide. Page indexes are 0-based; the pipeline reports 1-based numbers.
// Implementations are not safe for concurrent use.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the plain text of page n.
	PageText(n int) (string, error)

	// PageImages returns page n's embedded images. Images whose stream
	// data cannot be converted to a writable format are omitted.
	PageImages(n int) ([]EmbeddedImage, error)

	// Close releases the underlying document handles.
	Close() error
}

// OpenSource opens the build guide with the configured text backend.
func OpenSource(path string, backend types.GuideBackend) (Source, error) {
	switch backend {
	case types.BackendTabula:
		return openTabulaSource(path)
	case types.BackendFitz, "":
		return openFitzSource(path)
	default:
		return nil, fmt.Errorf("unknown guide backend %q (want %q or %q)", backend, types.BackendFitz, types.BackendTabula)
	}
}
