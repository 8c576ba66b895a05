package guide

import "strings"

// marker ends every badge's text in the build guide. The line carrying it
// belongs to the block it terminates.
const marker = "BOARD/LED TYPE"

// SplitBlocks cuts a page's sanitized lines into per-badge blocks. Each
// block runs from the line after the previous marker through the next
// marker line, inclusive. Lines after the last marker never form a block;
// text that reaches no marker is not a badge.
func SplitBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range lines {
		current = append(current, line)
		if strings.Contains(line, marker) {
			blocks = append(blocks, current)
			current = nil
		}
	}
	return blocks
}
