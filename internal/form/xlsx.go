// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses response rows from a downloaded workbook. An empty sheet
// name selects the workbook's first sheet. Row shape matches ReadCSV: the
// first row is the header, short rows pad with empty values (the xlsx
// format drops trailing empty cells, so padding matters here).
func ReadXLSX(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return zipRows(records[0], records[1:]), nil
}
