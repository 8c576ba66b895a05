package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minibadge/badge-engine/internal/catalog"
	"github.com/minibadge/badge-engine/internal/guide"
	"github.com/minibadge/badge-engine/internal/ui"
	"github.com/minibadge/badge-engine/pkg/types"
)

var guideCmd = &cobra.Command{
	Use:   "guide [pdf]",
	Short: "Convert a build-guide PDF to the badge catalog",
	Long: `Guide walks a conference build-guide PDF page by page, extracts badge
listings with their photos, and writes one catalog record per listing.
Pages without a listing are skipped. Page text comes from the fitz or
tabula backend; embedded photos are pulled alongside and saved as
<slug>-front and <slug>-back files under the images directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runGuide,
}

func init() {
	guideCmd.Flags().String("output", "minibadges.json", "output JSON path")
	guideCmd.Flags().String("images-dir", "images", "directory for extracted badge photos")
	guideCmd.Flags().String("year", "2025", "conference year stamped on every record")
	guideCmd.Flags().String("backend", "fitz", "text extraction backend: fitz or tabula")
	guideCmd.Flags().Bool("progress", false, "show a progress bar instead of per-page lines")

	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	cfg := types.GuideConfig{
		InputPath:      args[0],
		OutputPath:     stringSetting(cmd, "output"),
		ImagesDir:      stringSetting(cmd, "images-dir"),
		ConferenceYear: stringSetting(cmd, "year"),
		Backend:        types.GuideBackend(stringSetting(cmd, "backend")),
	}

	src, err := guide.OpenSource(cfg.InputPath, cfg.Backend)
	if err != nil {
		return err
	}
	defer src.Close()

	var bar *ui.Bar
	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		bar = ui.NewBar(int64(src.PageCount()), "scanning pages")
	}

	badges, summary, err := guide.Run(src, cfg, os.Stdout, bar)
	if err != nil {
		return err
	}

	if err := catalog.Write(cfg.OutputPath, badges); err != nil {
		return err
	}
	fmt.Printf("Wrote %d badges to %s\n", len(badges), cfg.OutputPath)

	if summary.HasFailures() {
		return fmt.Errorf("%d page(s) failed text extraction", summary.Failed)
	}
	return nil
}
