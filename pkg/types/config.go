package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "badge-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GuideBackend identifies the PDF text-extraction library.
type GuideBackend string

const (
	BackendFitz   GuideBackend = "fitz"
	BackendTabula GuideBackend = "tabula"
)

// GuideConfig holds settings for the build-guide (PDF) conversion stage.
type GuideConfig struct {
	// InputPath is the build-guide PDF.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is where the catalog JSON array is written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ImagesDir receives the extracted <slug>-front/<slug>-back files.
	ImagesDir string `json:"images_dir" yaml:"images_dir"`

	// ConferenceYear is stamped onto every record of the run (the guide
	// itself never states a year on badge pages).
	ConferenceYear string `json:"conference_year" yaml:"conference_year"`

	// Backend selects the text extractor: fitz or tabula. Embedded images
	// always come from the tabula reader.
	Backend GuideBackend `json:"backend" yaml:"backend"`
}

// FormConfig holds settings for the form-response (CSV/XLSX) conversion stage.
type FormConfig struct {
	HTTPConfig `yaml:",inline"`

	// CSVPath is the local responses CSV, used when CSVURL is empty.
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// CSVURL is a CSV export link (e.g. a Google Sheet "export?format=csv").
	// Takes precedence over CSVPath.
	CSVURL string `json:"csv_url" yaml:"csv_url"`

	// XLSXPath is a downloaded responses workbook. Takes precedence over
	// both CSV sources.
	XLSXPath string `json:"xlsx_path" yaml:"xlsx_path"`

	// Sheet is the worksheet to read; empty means the workbook's first.
	Sheet string `json:"sheet" yaml:"sheet"`

	// OutputPath is where the catalog JSON array is written.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// MirrorConfig holds settings for the mirroring stage, which converts form
// responses and downloads their images into a local cache.
type MirrorConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDelay is the delay between consecutive image downloads.
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// ImagesDir receives downloaded images and the cache manifest.
	ImagesDir string `json:"images_dir" yaml:"images_dir"`

	// OutputPath is where the rewritten catalog JSON array is written.
	OutputPath string `json:"output_path" yaml:"output_path"`
}
