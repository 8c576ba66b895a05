package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/minibadge/badge-engine/internal/catalog"
	"github.com/minibadge/badge-engine/internal/form"
	"github.com/minibadge/badge-engine/internal/mirror"
	"github.com/minibadge/badge-engine/internal/ui"
	"github.com/minibadge/badge-engine/pkg/types"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Convert form responses and mirror their images locally",
	Long: `Mirror runs the form conversion and then downloads every remote image a
record references into a local images directory, rewriting the record to
point at the downloaded file. Downloads are recorded in a manifest, so a
rerun only fetches images it has not seen before. A failed download keeps
the original URL in the record.`,
	RunE: runMirror,
}

func init() {
	mirrorCmd.Flags().String("csv", "./google-form-responses.csv", "responses CSV file")
	mirrorCmd.Flags().String("csv-url", "", "published CSV export URL (overrides --csv)")
	mirrorCmd.Flags().String("xlsx", "", "responses XLSX workbook (overrides both CSV sources)")
	mirrorCmd.Flags().String("sheet", "", "worksheet name (default: first sheet)")
	mirrorCmd.Flags().String("output", "minibadges_mirrored.json", "output JSON path")
	mirrorCmd.Flags().String("images-dir", "images", "directory for downloaded images and the cache manifest")
	mirrorCmd.Flags().Duration("delay", 0, "delay between consecutive downloads")
	mirrorCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	mirrorCmd.Flags().Bool("progress", false, "show a progress bar instead of per-image lines")

	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")

	formCfg := types.FormConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		CSVPath:  stringSetting(cmd, "csv"),
		CSVURL:   stringSetting(cmd, "csv-url"),
		XLSXPath: stringSetting(cmd, "xlsx"),
		Sheet:    stringSetting(cmd, "sheet"),
	}
	cfg := types.MirrorConfig{
		HTTPConfig:    formCfg.HTTPConfig,
		DownloadDelay: delay,
		ImagesDir:     stringSetting(cmd, "images-dir"),
		OutputPath:    stringSetting(cmd, "output"),
	}

	rows, err := loadRows(cmd.Context(), formCfg)
	if err != nil {
		return err
	}
	badges, _ := form.Convert(rows, os.Stdout)

	var bar *ui.Bar
	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		bar = ui.NewBar(int64(mirror.CountRemote(badges)), "mirroring images")
	}

	client := &http.Client{Timeout: cfg.Timeout}
	out, summary, err := mirror.Localize(cmd.Context(), client, badges, cfg, os.Stdout, bar)
	if err != nil {
		return err
	}

	if err := catalog.Write(cfg.OutputPath, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %d badges to %s\n", len(out), cfg.OutputPath)

	if summary.HasFailures() {
		return fmt.Errorf("%d image(s) failed to download", summary.Failed)
	}
	return nil
}
