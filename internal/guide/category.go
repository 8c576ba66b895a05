// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

// pageRange maps an inclusive span of 1-based guide pages to a badge
// category.
type pageRange struct {
	first, last int
	category    string
}

// pageRanges follows the printed guide's section layout. Pages outside
// every range are covers, indexes, and section dividers.
var pageRanges = []pageRange{
	{6, 24, "Sponsor"},
	{25, 27, "Official"},
	{28, 47, "Community"},
	{48, 53, "Event"},
	{54, 66, "Contest"},
	{67, 69, "Award"},
	{70, 265, "Personal"},
	{266, 267, "Accessory"},
	{268, 277, "Other"},
}

// Category returns the badge category for a 1-based page number, or the
// empty string for pages outside every catalogued section. Uncategorized
// pages are still scanned for badges; their records just carry no
// category.
func Category(page int) string {
	for _, r := range pageRanges {
		if page >= r.first && page <= r.last {
			return r.category
		}
	}
	return ""
}
