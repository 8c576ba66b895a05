// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package form converts maker-submitted form responses into badge records.
// Rows arrive as CSV (local export or published sheet URL) or as an XLSX
// workbook; all three paths produce the same column-keyed rows.
package form

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minibadge/badge-engine/pkg/types"
)

// Column headers as exported by the response sheet. Edit these when the
// form questions change.
const (
	colTitle                 = "Title of your badge"
	colAuthor                = "Your handle/name"
	colCategory              = "Type of badge"
	colSolderingDifficulty   = "Soldering difficulty"
	colRarity                = "Rarity"
	colQuantityMade          = "How many did you make?"
	colHowToAcquire          = "How do people get one?"
	colBoardHouse            = "PCB company used"
	colDescription           = "Description"
	colSpecialInstructions   = "Special instructions"
	colSolderingInstructions = "Assembly and soldering instructions"
	colProfilePictureURL     = "Your profile picture"
	colFrontImageURL         = "Front image"
	colBackImageURL          = "Back image"
	colTimestamp             = "Timestamp"
)

// Row is one form response keyed by column header.
type Row map[string]string

// get returns the trimmed value of col, or "" when the column is absent.
func (r Row) get(col string) string {
	return strings.TrimSpace(r[col])
}

// Summary holds the outcome of one form conversion run.
type Summary struct {
	Badges  int
	Skipped int
}

// BadgeFromRow builds a badge record from one response row. The bool is
// false for rows without a title, which the form cannot prevent and the
// catalog does not want. Values pass through as typed: difficulty and
// rarity keep the maker's own casing.
func BadgeFromRow(row Row) (types.Badge, bool) {
	title := row.get(colTitle)
	if title == "" {
		return types.Badge{}, false
	}

	ts := row.get(colTimestamp)
	return types.Badge{
		Title:                 title,
		Author:                row.get(colAuthor),
		ProfilePictureURL:     row.get(colProfilePictureURL),
		FrontImageURL:         row.get(colFrontImageURL),
		BackImageURL:          row.get(colBackImageURL),
		Description:           row.get(colDescription),
		SpecialInstructions:   row.get(colSpecialInstructions),
		SolderingInstructions: row.get(colSolderingInstructions),
		SolderingDifficulty:   row.get(colSolderingDifficulty),
		QuantityMade:          parseQuantity(row.get(colQuantityMade)),
		Category:              row.get(colCategory),
		ConferenceYear:        YearFromTimestamp(ts),
		BoardHouse:            row.get(colBoardHouse),
		HowToAcquire:          row.get(colHowToAcquire),
		Rarity:                row.get(colRarity),
		Timestamp:             ts,
	}, true
}

// Convert turns response rows into badge records in row order. Untitled
// rows are counted and skipped.
func Convert(rows []Row, w io.Writer) ([]types.Badge, Summary) {
	var (
		badges  []types.Badge
		summary Summary
	)
	for _, row := range rows {
		badge, ok := BadgeFromRow(row)
		if !ok {
			summary.Skipped++
			continue
		}
		badges = append(badges, badge)
		summary.Badges++
	}
	if summary.Skipped > 0 {
		fmt.Fprintf(w, "skipped: %d rows without a title\n", summary.Skipped)
	}
	fmt.Fprintf(w, "\nForm summary: %d rows, %d badges, %d skipped\n",
		len(rows), summary.Badges, summary.Skipped)
	return badges, summary
}

// parseQuantity reads a count typed by a human; anything unparseable is 0.
func parseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// timestampLayouts covers the timestamp shapes response sheets produce:
// the form default, the same without seconds, spreadsheet ISO styles, and
// a bare date. Month and day may be unpadded in all of them.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"1/2/2006",
}

// YearFromTimestamp derives the conference year from a response timestamp.
// Unparseable or empty timestamps yield ""; the raw string still lands in
// the record's timestamp field.
func YearFromTimestamp(ts string) string {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	return ""
}
