// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"regexp"
	"strings"
	"unicode"
)

// watermarkFragments are the page watermarks as they surface in extracted
// text once inner spaces are removed, forward and mirrored. The mirrored
// forms appear because the back-side watermark is printed flipped.
var watermarkFragments = map[string]bool{
	"FRONT": true,
	"BACK":  true,
	"TNORF": true,
	"KCAB":  true,
}

// repairRe matches a stray vertical-label letter fused onto the start of a
// content line, e.g. "C -Magic Smoke (qty 2)". Group 2 is the real line.
var repairRe = regexp.MustCompile(`^([A-Z])\s+(-.*)$`)

// CleanLines splits a page's raw text into trimmed, non-empty lines with
// layout decoration removed, preserving order. The output is a fixed
// point: running CleanLines over its own joined output changes nothing.
func CleanLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isDecoration(line) {
			continue
		}
		if m := repairRe.FindStringSubmatch(line); m != nil {
			line = m[2]
		}
		lines = append(lines, line)
	}
	return lines
}

// isDecoration reports whether a trimmed, non-empty line is page layout
// rather than badge content. Four shapes qualify: repeated page-number
// artifacts ("7 7 7 7"), single uppercase letters shed by vertical label
// columns, FRONT/BACK watermarks merged into the text flow, and bare page
// numbers up to two digits.
func isDecoration(line string) bool {
	if digitsAndSpaces(line) {
		return true
	}
	if r := []rune(line); len(r) == 1 && unicode.IsLetter(r[0]) && unicode.IsUpper(r[0]) {
		return true
	}
	if watermarkFragments[strings.ReplaceAll(line, " ", "")] {
		return true
	}
	if len(line) <= 2 && allDigits(line) {
		return true
	}
	return false
}

func digitsAndSpaces(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
