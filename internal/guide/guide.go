// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guide converts the conference's printed build guide PDF into
// badge records. Per-page text is sanitized, segmented into badge blocks,
// and mined for labeled fields, while the page's embedded photos are
// filtered down to a front/back pair and written alongside the catalog.
package guide

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minibadge/badge-engine/internal/ui"
	"github.com/minibadge/badge-engine/pkg/types"
)

// Summary holds the outcome of one guide conversion run.
type Summary struct {
	Badges  int
	Pages   int
	Skipped int
	Failed  int
}

// HasFailures reports whether any page failed text extraction.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run walks every page of src in document order, emitting one badge record
// per accepted block and writing each accepted badge's photo pair under
// cfg.ImagesDir. A page that fails text extraction is counted and the run
// continues; the returned error covers only the images directory, which
// must be creatable up front.
func Run(src Source, cfg types.GuideConfig, w io.Writer, bar *ui.Bar) ([]types.Badge, Summary, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		return nil, Summary{}, fmt.Errorf("creating images directory: %w", err)
	}

	var (
		badges  []types.Badge
		summary Summary
	)

	total := src.PageCount()
	for n := 0; n < total; n++ {
		pageNo := n + 1
		summary.Pages++
		bar.Add(1)

		text, err := src.PageText(n)
		if err != nil {
			fmt.Fprintf(w, "failed:  page %d (%v)\n", pageNo, err)
			summary.Failed++
			continue
		}

		blocks := SplitBlocks(CleanLines(text))
		if len(blocks) == 0 {
			summary.Skipped++
			continue
		}

		// The photo pair is chosen once per page; on a multi-badge page
		// every accepted block stores the same pair under its own slug.
		pair := pagePair(src, n, w)
		category := Category(pageNo)

		for _, block := range blocks {
			fields, ok := ExtractFields(block)
			if !ok {
				continue
			}
			badge := assemble(fields, category, cfg, pair, w)
			badges = append(badges, badge)
			summary.Badges++
			if !bar.Active() {
				fmt.Fprintf(w, "converted: %s (page %d)\n", badge.Slug(), pageNo)
			}
		}
	}
	bar.Finish()

	fmt.Fprintf(w, "\nGuide summary: %d badges, %d pages scanned, %d skipped, %d failed\n",
		summary.Badges, summary.Pages, summary.Skipped, summary.Failed)
	return badges, summary, nil
}

// pagePair selects the page's front/back photo candidates. An image
// extraction error degrades to no photos for the page.
func pagePair(src Source, n int, w io.Writer) []EmbeddedImage {
	images, err := src.PageImages(n)
	if err != nil {
		fmt.Fprintf(w, "  warning: images of page %d: %v\n", n+1, err)
		return nil
	}
	return SelectImagePair(images)
}

// assemble builds the record for one accepted block and writes the page's
// photo pair under the block's slug. A photo that fails to write leaves
// its URL slot empty; the record is still emitted.
func assemble(f Fields, category string, cfg types.GuideConfig, pair []EmbeddedImage, w io.Writer) types.Badge {
	b := types.Badge{
		Title:                 f.Title,
		Author:                f.Author,
		Description:           f.Description,
		SolderingInstructions: f.SolderingInstructions,
		SolderingDifficulty:   f.SolderingDifficulty,
		Category:              category,
		ConferenceYear:        cfg.ConferenceYear,
		HowToAcquire:          f.HowToAcquire,
		Rarity:                f.Rarity,
	}

	slug := b.Slug()
	if len(pair) > 0 {
		b.FrontImageURL = writeImage(cfg.ImagesDir, slug+"-front."+pair[0].Ext, pair[0].Data, w)
	}
	if len(pair) > 1 {
		b.BackImageURL = writeImage(cfg.ImagesDir, slug+"-back."+pair[1].Ext, pair[1].Data, w)
	}
	return b
}

// writeImage stores data under dir and returns the record's reference to
// it, a forward-slash relative path, or "" when the write fails. A slug
// collision overwrites the earlier file.
func writeImage(dir, name string, data []byte, w io.Writer) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(w, "  warning: writing %s: %v\n", path, err)
		return ""
	}
	return filepath.ToSlash(path)
}
