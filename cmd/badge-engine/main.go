// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the badge-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the badge-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "badge-engine",
	Short: "Convert minibadge listings into a shared JSON catalog",
	Long: `badge-engine converts heterogeneous minibadge sources into one JSON
catalog format. Listings arrive as conference build-guide PDFs and as
maker-submitted form responses; each converter is a subcommand emitting the
same record schema, so downstream consumers read a single catalog shape.

The guide subcommand parses a build-guide PDF, form converts a responses
CSV or workbook, and mirror additionally downloads every referenced image
into a local cache.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./badge-engine.yaml or ~/.config/badge-engine/config.yaml)")
}

func initConfig() {
	// A local .env supplies the same variables the standalone converter
	// scripts read.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("badge-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "badge-engine"))
		}
	}

	viper.SetEnvPrefix("BADGE_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Variable names the standalone scripts established.
	viper.BindEnv("csv", "BADGE_ENGINE_CSV", "MINIBADGE_CSV")
	viper.BindEnv("csv-url", "BADGE_ENGINE_CSV_URL", "MINIBADGE_CSV_URL", "GOOGLE_FORM_CSV_URL")
	viper.BindEnv("output", "BADGE_ENGINE_OUTPUT", "MINIBADGE_JSON")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a flag against config and environment: an
// explicitly set flag wins, then a viper value, then the flag default.
func stringSetting(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	if !cmd.Flags().Changed(name) {
		if s := viper.GetString(name); s != "" {
			v = s
		}
	}
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
