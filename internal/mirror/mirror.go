// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mirror rewrites a form-derived catalog to reference local
// copies of its images. Remote URLs are downloaded once into an images
// directory with a manifest; later runs reuse the files already there.
package mirror

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minibadge/badge-engine/internal/httputil"
	"github.com/minibadge/badge-engine/internal/ui"
	"github.com/minibadge/badge-engine/pkg/types"
)

const downloadRetries = 3

// Summary holds the outcome of one mirroring run.
type Summary struct {
	Badges  int
	Fetched int
	Cached  int
	Failed  int
}

// HasFailures reports whether any image failed to download.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// CountRemote returns the number of image slots Localize would touch,
// sizing a progress bar before the run starts.
func CountRemote(badges []types.Badge) int {
	n := 0
	for i := range badges {
		for _, v := range []string{badges[i].ProfilePictureURL, badges[i].FrontImageURL, badges[i].BackImageURL} {
			if isRemote(strings.TrimSpace(v)) {
				n++
			}
		}
	}
	return n
}

// Localize downloads every http(s) image referenced by badges into
// cfg.ImagesDir and rewrites the records to point at the local copies.
// A URL already in the manifest whose file still exists is reused without
// a network call. A failed download keeps the original URL in the record
// and the run continues; only an unusable images directory or manifest is
// fatal. The input slice is not modified.
func Localize(ctx context.Context, client *http.Client, badges []types.Badge, cfg types.MirrorConfig, w io.Writer, bar *ui.Bar) ([]types.Badge, Summary, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		return nil, Summary{}, fmt.Errorf("creating images directory: %w", err)
	}
	manifest, err := LoadManifest(cfg.ImagesDir)
	if err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{Badges: len(badges)}
	out := make([]types.Badge, len(badges))
	downloads := 0

	for i := range badges {
		b := badges[i]
		slug := b.Slug()

		localize := func(slot *string, role string) {
			raw := strings.TrimSpace(*slot)
			if !isRemote(raw) {
				return
			}
			defer bar.Add(1)

			if file, ok := manifest.Lookup(raw); ok {
				*slot = localRef(cfg.ImagesDir, file)
				summary.Cached++
				if !bar.Active() {
					fmt.Fprintf(w, "cached: %s\n", file)
				}
				return
			}

			name := slug + "-" + role
			if !bar.Active() {
				fmt.Fprintf(w, "downloading: %s (%s)\n", name, raw)
			}
			if downloads > 0 && cfg.DownloadDelay > 0 {
				time.Sleep(cfg.DownloadDelay)
			}
			downloads++

			file, err := downloadImage(ctx, client, raw, name, cfg)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
				summary.Failed++
				return
			}
			manifest.Add(raw, file)
			*slot = localRef(cfg.ImagesDir, file)
			summary.Fetched++
		}

		localize(&b.ProfilePictureURL, "profile")
		localize(&b.FrontImageURL, "front")
		localize(&b.BackImageURL, "back")
		out[i] = b
	}

	if err := manifest.Save(); err != nil {
		return out, summary, fmt.Errorf("saving manifest: %w", err)
	}
	bar.Finish()

	fmt.Fprintf(w, "\nMirror summary: %d badges, %d fetched, %d cached, %d failed\n",
		summary.Badges, summary.Fetched, summary.Cached, summary.Failed)
	return out, summary, nil
}

// downloadImage fetches rawURL into the images directory under base plus
// the detected extension, via a temp file so a partial download never
// lands under a final name. It returns the stored filename.
func downloadImage(ctx context.Context, client *http.Client, rawURL, base string, cfg types.MirrorConfig) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, downloadRetries)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	ext := extForURL(rawURL)
	if ext == "" {
		ext = extForContentType(resp.Header.Get("Content-Type"))
	}
	if ext == "" {
		ext = "bin"
	}
	name := base + "." + ext

	tmpFile, err := os.CreateTemp(cfg.ImagesDir, ".mirror-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, filepath.Join(cfg.ImagesDir, name)); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return name, nil
}

// isRemote reports whether v is a fetchable URL rather than an
// already-local path or empty slot.
func isRemote(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

// localRef is the rewritten record value for a mirrored file, a
// forward-slash relative path like the guide converter writes.
func localRef(dir, file string) string {
	return filepath.ToSlash(filepath.Join(dir, file))
}
