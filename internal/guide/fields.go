// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"strings"
	"unicode"
)

// Label text as set in the guide's layout. Matching is case-sensitive.
const (
	authorLabel     = "Designed By:"
	difficultyLabel = "DIFFICULTY:"
	acquireLabel    = "HOW DO I GET ONE?"
	rarityLabel     = "RARITY:"
	assemblyLabel   = "ASSEMBLY INSTRUCTIONS:"
)

// anchor locates a labeled header line within a block. A prefix anchor
// must start the line with its sole token; otherwise every token must
// appear somewhere in the line.
type anchor struct {
	tokens []string
	prefix bool
}

// Anchors for the current guide layout. The difficulty and acquisition
// labels share one header line, so they form a single two-token anchor.
var (
	authorAnchor     = anchor{tokens: []string{authorLabel}}
	difficultyAnchor = anchor{tokens: []string{difficultyLabel, acquireLabel}}
	rarityAnchor     = anchor{tokens: []string{rarityLabel}, prefix: true}
	assemblyAnchor   = anchor{tokens: []string{assemblyLabel}, prefix: true}
)

// findAnchor returns the index of the first line matching a, or false when
// no line matches.
func findAnchor(lines []string, a anchor) (int, bool) {
	for i, line := range lines {
		if a.prefix {
			if strings.HasPrefix(line, a.tokens[0]) {
				return i, true
			}
			continue
		}
		found := true
		for _, tok := range a.tokens {
			if !strings.Contains(line, tok) {
				found = false
				break
			}
		}
		if found {
			return i, true
		}
	}
	return -1, false
}

// Fields is the textual field set extracted from one badge block.
type Fields struct {
	Title                 string
	Author                string
	Description           string
	SolderingDifficulty   string
	Rarity                string
	HowToAcquire          string
	SolderingInstructions string
}

// ExtractFields pulls the labeled sections out of one block. The bool is
// false when the block carries neither a difficulty nor a description,
// the signature of a header-only fragment that slipped through
// segmentation; callers skip those without error.
func ExtractFields(block []string) (Fields, bool) {
	if len(block) == 0 {
		return Fields{}, false
	}

	var f Fields
	f.Title = strings.TrimSpace(block[0])

	authorIdx, hasAuthor := findAnchor(block, authorAnchor)
	if hasAuthor {
		_, rest, _ := strings.Cut(block[authorIdx], authorLabel)
		f.Author = strings.TrimSpace(rest)
	}

	diffIdx, hasDiff := findAnchor(block, difficultyAnchor)

	// The description spans the lines between the author line and the
	// difficulty header, for whichever of those exist. The terminating
	// marker line is a delimiter, never description content.
	descStart := 1
	if hasAuthor {
		descStart = authorIdx + 1
	}
	descEnd := len(block)
	if hasDiff {
		descEnd = diffIdx
	}
	if descStart < descEnd {
		var desc []string
		for _, line := range block[descStart:descEnd] {
			if strings.TrimSpace(line) == "" || strings.Contains(line, marker) {
				continue
			}
			desc = append(desc, line)
		}
		f.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	}

	// The line after the difficulty header reads like "BEGINNER Ask the
	// author at the con": first word is the difficulty, the rest is how
	// to acquire.
	if hasDiff && diffIdx+1 < len(block) {
		tokens := strings.Fields(block[diffIdx+1])
		if len(tokens) > 0 {
			f.SolderingDifficulty = capitalize(tokens[0])
			f.HowToAcquire = strings.Join(tokens[1:], " ")
		}
	}

	if rarityIdx, ok := findAnchor(block, rarityAnchor); ok && rarityIdx+1 < len(block) {
		f.Rarity = capitalize(strings.TrimSpace(block[rarityIdx+1]))
	}

	if asmIdx, ok := findAnchor(block, assemblyAnchor); ok {
		var asm []string
		for _, line := range block[asmIdx+1:] {
			if strings.Contains(line, marker) {
				break
			}
			asm = append(asm, line)
		}
		f.SolderingInstructions = strings.TrimSpace(strings.Join(asm, "\n"))
	}

	if f.SolderingDifficulty == "" && f.Description == "" {
		return Fields{}, false
	}
	return f, true
}

// capitalize lowercases a value and uppercases its first rune, turning the
// guide's all-caps values into display form ("BEGINNER" to "Beginner").
// The pass is over the whole string, so later words stay lowercase.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
