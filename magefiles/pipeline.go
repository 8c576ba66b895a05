package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Guide builds the CLI and converts a build-guide PDF into out/minibadges.json.
func Guide(pdf string) error {
	mg.Deps(Build, Init)
	return runEngine("guide", pdf,
		"--output", filepath.Join("out", "minibadges.json"),
		"--images-dir", "images")
}

// Form builds the CLI and converts the local form responses CSV.
func Form() error {
	mg.Deps(Build, Init)
	return runEngine("form",
		"--output", filepath.Join("out", "minibadges_from_form.json"))
}

// Mirror builds the CLI and converts form responses, downloading their
// images into images/.
func Mirror() error {
	mg.Deps(Build, Init)
	return runEngine("mirror",
		"--output", filepath.Join("out", "minibadges_mirrored.json"),
		"--images-dir", "images")
}

// runEngine invokes the built binary, streaming its output.
func runEngine(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", binName, args[0], err)
	}
	return nil
}
