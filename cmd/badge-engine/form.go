package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minibadge/badge-engine/internal/catalog"
	"github.com/minibadge/badge-engine/internal/form"
	"github.com/minibadge/badge-engine/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "badge-engine/0.1"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Convert form responses to the badge catalog",
	Long: `Form converts maker-submitted responses into catalog records. Responses
are read from a local CSV export, a published CSV URL, or a downloaded
XLSX workbook; a workbook wins over a URL, and a URL wins over the local
file. Rows without a badge title are skipped.`,
	RunE: runForm,
}

func init() {
	formCmd.Flags().String("csv", "./google-form-responses.csv", "responses CSV file")
	formCmd.Flags().String("csv-url", "", "published CSV export URL (overrides --csv)")
	formCmd.Flags().String("xlsx", "", "responses XLSX workbook (overrides both CSV sources)")
	formCmd.Flags().String("sheet", "", "worksheet name (default: first sheet)")
	formCmd.Flags().String("output", "minibadges_from_form.json", "output JSON path")
	formCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.FormConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		CSVPath:    stringSetting(cmd, "csv"),
		CSVURL:     stringSetting(cmd, "csv-url"),
		XLSXPath:   stringSetting(cmd, "xlsx"),
		Sheet:      stringSetting(cmd, "sheet"),
		OutputPath: stringSetting(cmd, "output"),
	}

	rows, err := loadRows(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	badges, _ := form.Convert(rows, os.Stdout)

	if err := catalog.Write(cfg.OutputPath, badges); err != nil {
		return err
	}
	fmt.Printf("Wrote %d badges to %s\n", len(badges), cfg.OutputPath)
	return nil
}

// loadRows picks the response source: workbook, then URL, then local CSV.
func loadRows(ctx context.Context, cfg types.FormConfig) ([]form.Row, error) {
	switch {
	case cfg.XLSXPath != "":
		fmt.Fprintln(os.Stderr, "Reading workbook:", cfg.XLSXPath)
		return form.ReadXLSX(cfg.XLSXPath, cfg.Sheet)
	case cfg.CSVURL != "":
		fmt.Fprintln(os.Stderr, "Fetching CSV from URL:", cfg.CSVURL)
		client := &http.Client{Timeout: cfg.Timeout}
		return form.FetchCSV(ctx, client, cfg.CSVURL, cfg)
	default:
		fmt.Fprintln(os.Stderr, "Reading CSV from file:", cfg.CSVPath)
		return form.ReadCSVFile(cfg.CSVPath)
	}
}
