// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"regexp"
	"strings"
)

// Badge is one minibadge record in the output catalog. Struct order is the
// order the JSON encoder emits, and downstream consumers of the catalog
// depend on it, so new fields go at the end.
type Badge struct {
	// Title is the badge title. Records without one are never emitted.
	Title string `json:"title" yaml:"title"`

	// Author is the maker's handle or name.
	Author string `json:"author" yaml:"author"`

	// ProfilePictureURL points at the maker's picture. Always empty in
	// guide conversions; the build guide has no profile images.
	ProfilePictureURL string `json:"profilePictureUrl" yaml:"profilePictureUrl"`

	// FrontImageURL and BackImageURL reference the badge faces: a relative
	// path under the images directory, a source URL, or empty.
	FrontImageURL string `json:"frontImageUrl" yaml:"frontImageUrl"`
	BackImageURL  string `json:"backImageUrl" yaml:"backImageUrl"`

	// Description is free text, possibly multi-line (joined with \n).
	Description string `json:"description" yaml:"description"`

	// SpecialInstructions carries wearer-facing notes from the form.
	SpecialInstructions string `json:"specialInstructions" yaml:"specialInstructions"`

	// SolderingInstructions is the assembly text, possibly multi-line.
	SolderingInstructions string `json:"solderingInstructions" yaml:"solderingInstructions"`

	// SolderingDifficulty is a single capitalized word (e.g. "Beginner").
	SolderingDifficulty string `json:"solderingDifficulty" yaml:"solderingDifficulty"`

	// QuantityMade is how many were produced; 0 when unknown or unparseable.
	QuantityMade int `json:"quantityMade" yaml:"quantityMade"`

	// Category groups the badge (Sponsor, Official, Community, ...). May be
	// empty for pages outside the guide's catalogued ranges.
	Category string `json:"category" yaml:"category"`

	// ConferenceYear is the year tag: a per-run constant in the guide path,
	// derived from Timestamp in the form path. Empty when underivable.
	ConferenceYear string `json:"conferenceYear" yaml:"conferenceYear"`

	// BoardHouse is the PCB fabricator named on the form.
	BoardHouse string `json:"boardHouse" yaml:"boardHouse"`

	// HowToAcquire describes how people get one.
	HowToAcquire string `json:"howToAcquire" yaml:"howToAcquire"`

	// Rarity is a capitalized word (e.g. "Rare"). Not validated.
	Rarity string `json:"rarity" yaml:"rarity"`

	// Timestamp is the raw form submission time, verbatim. Empty in the
	// guide path.
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

var (
	// apostropheRe matches the apostrophe variants that titles use. These
	// are removed rather than dashed so "Don't Panic" slugs to dont-panic.
	apostropheRe = regexp.MustCompile(`['’]`)

	// nonAlnumRe matches runs of anything that can't appear in a slug.
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a filesystem- and URL-safe identifier from a badge title:
// lowercase, apostrophes stripped, every other non-alphanumeric run collapsed
// to a single dash, leading/trailing dashes trimmed. An empty result falls
// back to "badge" so image filenames are never extensionless dots.
func Slugify(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = apostropheRe.ReplaceAllString(t, "")
	t = nonAlnumRe.ReplaceAllString(t, "-")
	t = strings.Trim(t, "-")
	if t == "" {
		return "badge"
	}
	return t
}

// Slug returns the identifier used to name this badge's image files.
// Slugs are not guaranteed unique across a run; a collision means a later
// badge's images overwrite an earlier one's.
func (b Badge) Slug() string {
	return Slugify(b.Title)
}
