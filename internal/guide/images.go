// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import "sort"

// Image filter thresholds. Badge faces are photographed large and roughly
// square; banners, logos, and page furniture fail one of these.
const (
	minImageDim = 300
	minAspect   = 0.7
	maxAspect   = 1.3
)

// SelectImagePair picks the front and back badge photos from a page's
// embedded images: keep images strictly larger than minImageDim on both
// sides with a width/height ratio strictly inside (minAspect, maxAspect),
// rank by pixel area, take the top two. The result holds zero, one, or
// two images, largest first. Area ties keep extraction order.
//
// Size and shape are the only signals available, so on a page with more
// than one badge nothing ties the two survivors to any particular block.
func SelectImagePair(images []EmbeddedImage) []EmbeddedImage {
	var candidates []EmbeddedImage
	for _, img := range images {
		if min(img.Width, img.Height) <= minImageDim {
			continue
		}
		aspect := 0.0
		if img.Height != 0 {
			aspect = float64(img.Width) / float64(img.Height)
		}
		if aspect <= minAspect || aspect >= maxAspect {
			continue
		}
		candidates = append(candidates, img)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Width*candidates[i].Height > candidates[j].Width*candidates[j].Height
	})

	if len(candidates) > 2 {
		candidates = candidates[:2]
	}
	return candidates
}
