// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"fmt"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/reader"
)

// tabulaSource reads both text and images through the pure-Go tabula
// reader. One reader handle serves both; the fluent extractor wraps it per
// page without re-opening the file.
type tabulaSource struct {
	r     *reader.Reader
	pages int
}

func openTabulaSource(path string) (*tabulaSource, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	n, err := r.PageCount()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return &tabulaSource{r: r, pages: n}, nil
}

func (s *tabulaSource) PageCount() int { return s.pages }

func (s *tabulaSource) PageText(n int) (string, error) {
	text, _, err := tabula.FromReader(s.r).Pages(n + 1).Text()
	if err != nil {
		return "", fmt.Errorf("extracting text of page %d: %w", n+1, err)
	}
	return text, nil
}

func (s *tabulaSource) PageImages(n int) ([]EmbeddedImage, error) {
	return extractPageImages(s.r, n)
}

func (s *tabulaSource) Close() error { return s.r.Close() }

// extractPageImages pulls page n's image XObjects through the tabula
// reader and converts each to file-ready bytes. Images that cannot be
// converted are dropped, not fatal; a page with a broken thumbnail still
// yields its badge photos.
func extractPageImages(r *reader.Reader, n int) ([]EmbeddedImage, error) {
	page, err := r.GetPage(n)
	if err != nil {
		return nil, fmt.Errorf("loading page %d: %w", n+1, err)
	}
	raw, err := r.ExtractPageImages(page)
	if err != nil {
		return nil, fmt.Errorf("extracting images of page %d: %w", n+1, err)
	}

	var images []EmbeddedImage
	for _, img := range raw {
		data, ext, err := encodeImage(img)
		if err != nil {
			continue
		}
		images = append(images, EmbeddedImage{
			Width:  img.Width,
			Height: img.Height,
			Data:   data,
			Ext:    ext,
		})
	}
	return images, nil
}

// encodeImage returns img as encoded file bytes plus the matching
// extension. DCT-filtered streams are already complete JPEG files and
// pass through untouched; everything else is re-encoded as PNG from the
// decoded pixels.
func encodeImage(img reader.PageImage) ([]byte, string, error) {
	if img.Filter == "DCTDecode" || img.Filter == "DCT" {
		return img.Data, "jpg", nil
	}
	png, err := img.ToPNG()
	if err != nil {
		return nil, "", err
	}
	return png, "png", nil
}
