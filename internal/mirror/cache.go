// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mirror

import (
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// manifestName is the cache index kept inside the images directory.
const manifestName = "manifest.yaml"

// Entry records one downloaded image.
type Entry struct {
	URL     string    `yaml:"url"`
	File    string    `yaml:"file"`
	Fetched time.Time `yaml:"fetched"`
}

// Manifest indexes downloaded images by source URL so reruns reuse files
// instead of re-fetching them. Filenames are stored bare; they resolve
// against the directory the manifest lives in.
type Manifest struct {
	Images []Entry `yaml:"images"`

	dir   string
	index map[string]string
}

// LoadManifest reads the manifest in dir, returning an empty manifest when
// none exists yet.
func LoadManifest(dir string) (*Manifest, error) {
	m := &Manifest{dir: dir, index: make(map[string]string)}

	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	for _, e := range m.Images {
		m.index[e.URL] = e.File
	}
	return m, nil
}

// Lookup returns the stored filename for rawURL when the manifest has it
// and the file is still present.
func (m *Manifest) Lookup(rawURL string) (string, bool) {
	file, ok := m.index[rawURL]
	if !ok {
		return "", false
	}
	if _, err := os.Stat(filepath.Join(m.dir, file)); err != nil {
		return "", false
	}
	return file, true
}

// Add records rawURL as stored in file, replacing any earlier entry for
// the same URL.
func (m *Manifest) Add(rawURL, file string) {
	now := time.Now().UTC()
	if _, ok := m.index[rawURL]; ok {
		for i := range m.Images {
			if m.Images[i].URL == rawURL {
				m.Images[i].File = file
				m.Images[i].Fetched = now
				break
			}
		}
	} else {
		m.Images = append(m.Images, Entry{URL: rawURL, File: file, Fetched: now})
	}
	m.index[rawURL] = file
}

// Save writes the manifest back into its images directory.
func (m *Manifest) Save() error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(m.dir, manifestName), data, 0o644)
}

// knownImageExts are extensions trusted when they appear in a URL path.
var knownImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// extForURL pulls a usable image extension out of the URL path, or "".
func extForURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	if knownImageExts[ext] {
		return ext
	}
	return ""
}

// extForContentType maps a response Content-Type to an extension, or "".
func extForContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	switch mt {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	return ""
}
