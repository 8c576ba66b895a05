// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui holds terminal display helpers for the badge-engine CLI.
package ui

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bar is a stderr progress bar that may be absent. A nil *Bar is valid
// and every method is a no-op on it, so pipelines thread one through
// without branching on whether progress display is on.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar creates a progress bar over total units with the given label.
func NewBar(total int64, description string) *Bar {
	bar := progressbar.NewOptions64(
		total,
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Bar{bar: bar}
}

// Add advances the bar by n units.
func (b *Bar) Add(n int) {
	if b == nil || b.bar == nil {
		return
	}
	_ = b.bar.Add(n)
}

// Finish fills the bar and moves to the next line.
func (b *Bar) Finish() {
	if b == nil || b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}

// Active reports whether a real bar is rendering. Pipelines mute
// per-item success lines while one is active so the display doesn't
// tear; warnings and failures print regardless.
func (b *Bar) Active() bool { return b != nil && b.bar != nil }
