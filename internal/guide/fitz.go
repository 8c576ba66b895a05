// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"fmt"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/tsawler/tabula/reader"
)

// fitzSource extracts text through MuPDF and images through the tabula
// reader, holding one handle on the file for each. MuPDF's layout engine
// reads the guide's multi-column pages far better, but its image API
// re-renders pages instead of returning the embedded streams.
type fitzSource struct {
	doc *fitz.Document
	r   *reader.Reader
}

func openFitzSource(path string) (*fitzSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	r, err := reader.Open(path)
	if err != nil {
		doc.Close()
		return nil, fmt.Errorf("opening %s for image extraction: %w", path, err)
	}
	return &fitzSource{doc: doc, r: r}, nil
}

func (s *fitzSource) PageCount() int { return s.doc.NumPage() }

func (s *fitzSource) PageText(n int) (string, error) {
	return s.doc.Text(n)
}

func (s *fitzSource) PageImages(n int) ([]EmbeddedImage, error) {
	return extractPageImages(s.r, n)
}

func (s *fitzSource) Close() error {
	err := s.doc.Close()
	if cerr := s.r.Close(); err == nil {
		err = cerr
	}
	return err
}
