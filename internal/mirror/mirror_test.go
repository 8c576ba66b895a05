// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mirror

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/minibadge/badge-engine/internal/httputil"
	"github.com/minibadge/badge-engine/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func TestLocalize(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/front.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("front-bytes"))
		case "/back":
			w.Header().Set("Content-Type", "image/webp")
			w.Write([]byte("back-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	imagesDir := filepath.Join(t.TempDir(), "images")
	cfg := types.MirrorConfig{ImagesDir: imagesDir}
	badges := []types.Badge{{
		Title:         "Blinky Cat",
		FrontImageURL: ts.URL + "/front.png",
		BackImageURL:  ts.URL + "/back",
	}}

	var log bytes.Buffer
	out, sum, err := Localize(context.Background(), ts.Client(), badges, cfg, &log, nil)
	if err != nil {
		t.Fatalf("Localize: %v", err)
	}

	if sum.Badges != 1 || sum.Fetched != 2 || sum.Cached != 0 || sum.Failed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if got, want := out[0].FrontImageURL, filepath.ToSlash(filepath.Join(imagesDir, "blinky-cat-front.png")); got != want {
		t.Errorf("front = %q, want %q", got, want)
	}
	if got, want := out[0].BackImageURL, filepath.ToSlash(filepath.Join(imagesDir, "blinky-cat-back.webp")); got != want {
		t.Errorf("back = %q, want %q", got, want)
	}
	for _, name := range []string{"blinky-cat-front.png", "blinky-cat-back.webp", manifestName} {
		if _, err := os.Stat(filepath.Join(imagesDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if data, _ := os.ReadFile(filepath.Join(imagesDir, "blinky-cat-front.png")); string(data) != "front-bytes" {
		t.Errorf("front bytes = %q", data)
	}
	if badges[0].FrontImageURL != ts.URL+"/front.png" {
		t.Errorf("input slice mutated: %q", badges[0].FrontImageURL)
	}
	if !strings.Contains(log.String(), "downloading: blinky-cat-front") {
		t.Errorf("log = %q", log.String())
	}

	// A second run over the same badges is served entirely from the cache.
	before := atomic.LoadInt32(&hits)
	out2, sum2, err := Localize(context.Background(), ts.Client(), badges, cfg, &log, nil)
	if err != nil {
		t.Fatalf("second Localize: %v", err)
	}
	if sum2.Cached != 2 || sum2.Fetched != 0 {
		t.Errorf("second summary = %+v", sum2)
	}
	if after := atomic.LoadInt32(&hits); after != before {
		t.Errorf("cache hit still fetched: %d requests before, %d after", before, after)
	}
	if out2[0].FrontImageURL != out[0].FrontImageURL {
		t.Errorf("cached rewrite %q != %q", out2[0].FrontImageURL, out[0].FrontImageURL)
	}
	if !strings.Contains(log.String(), "cached: blinky-cat-front.png") {
		t.Errorf("log = %q", log.String())
	}
}

func TestLocalizeFailureKeepsURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	cfg := types.MirrorConfig{ImagesDir: t.TempDir()}
	badges := []types.Badge{{Title: "Lost", FrontImageURL: ts.URL + "/missing.png"}}

	var log bytes.Buffer
	out, sum, err := Localize(context.Background(), ts.Client(), badges, cfg, &log, nil)
	if err != nil {
		t.Fatalf("Localize: %v", err)
	}
	if sum.Failed != 1 || !sum.HasFailures() {
		t.Errorf("summary = %+v", sum)
	}
	if out[0].FrontImageURL != ts.URL+"/missing.png" {
		t.Errorf("failed slot should keep the source URL, got %q", out[0].FrontImageURL)
	}
	if !strings.Contains(log.String(), "failed:  lost-front") {
		t.Errorf("log = %q", log.String())
	}
}

func TestLocalizePassesThroughLocalValues(t *testing.T) {
	cfg := types.MirrorConfig{ImagesDir: t.TempDir()}
	badges := []types.Badge{{
		Title:         "Settled",
		FrontImageURL: "images/settled-front.png",
		BackImageURL:  "ftp://example.com/x.png",
	}}

	out, sum, err := Localize(context.Background(), http.DefaultClient, badges, cfg, io.Discard, nil)
	if err != nil {
		t.Fatalf("Localize: %v", err)
	}
	if sum.Fetched != 0 || sum.Cached != 0 || sum.Failed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if out[0].FrontImageURL != "images/settled-front.png" {
		t.Errorf("front = %q", out[0].FrontImageURL)
	}
	if out[0].BackImageURL != "ftp://example.com/x.png" {
		t.Errorf("back = %q", out[0].BackImageURL)
	}
}

func TestLocalizeBinFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("mystery"))
	}))
	defer ts.Close()

	cfg := types.MirrorConfig{ImagesDir: t.TempDir()}
	badges := []types.Badge{{Title: "Opaque", FrontImageURL: ts.URL + "/download"}}

	out, _, err := Localize(context.Background(), ts.Client(), badges, cfg, io.Discard, nil)
	if err != nil {
		t.Fatalf("Localize: %v", err)
	}
	if got := filepath.Base(out[0].FrontImageURL); got != "opaque-front.bin" {
		t.Errorf("file = %q, want opaque-front.bin", got)
	}
}

func TestLocalizeRetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("eventually"))
	}))
	defer ts.Close()

	cfg := types.MirrorConfig{ImagesDir: t.TempDir()}
	badges := []types.Badge{{Title: "Patient", FrontImageURL: ts.URL + "/slow.png"}}

	_, sum, err := Localize(context.Background(), ts.Client(), badges, cfg, io.Discard, nil)
	if err != nil {
		t.Fatalf("Localize: %v", err)
	}
	if sum.Fetched != 1 || sum.Failed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("server saw %d requests, want 2", got)
	}
}

func TestCountRemote(t *testing.T) {
	badges := []types.Badge{
		{ProfilePictureURL: "https://a/x.png", FrontImageURL: "local.png", BackImageURL: "http://b/y"},
		{FrontImageURL: ""},
	}
	if got := CountRemote(badges); got != 2 {
		t.Errorf("CountRemote = %d, want 2", got)
	}
}
