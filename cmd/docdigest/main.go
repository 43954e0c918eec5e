// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docdigest CLI.
//
// docdigest recovers heading/section structure from batches of PDF documents
// and ranks the sections against a stated persona and job-to-be-done,
// producing a compact ranked digest with refined excerpts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docdigest CLI.
var rootCmd = &cobra.Command{
	Use:   "docdigest",
	Short: "Persona-driven section ranking for PDF batches",
	Long: `docdigest extracts, ranks, and summarizes sections from a batch of PDF
documents according to a stated user persona and a job-to-be-done.

The analyze command runs the full pipeline: recover heading structure from
layout and font signals, build a query profile from the persona and job text,
score every section, and write a bounded ranked digest with refined excerpts.
The history command lists and replays past runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docdigest.yaml or ~/.config/docdigest/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docdigest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docdigest"))
		}
	}

	viper.SetEnvPrefix("DOCDIGEST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
