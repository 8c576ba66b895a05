package form

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/minibadge/badge-engine/internal/httputil"
	"github.com/minibadge/badge-engine/pkg/types"
)

const fetchRetries = 3

// zipRows pairs each record with the header, padding short records with
// empty values. A header repeated in the sheet keeps its last occurrence.
func zipRows(header []string, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ReadCSV parses response rows from r. The first record is the header row.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return zipRows(records[0], records[1:]), nil
}

// ReadCSVFile parses response rows from a local export.
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// FetchCSV downloads a published response sheet and parses its rows.
// Rate-limit responses retry with backoff before giving up.
func FetchCSV(ctx context.Context, client *http.Client, url string, cfg types.FormConfig) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := httputil.DoWithRetry(ctx, client, req, fetchRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	rows, err := ReadCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return rows, nil
}
