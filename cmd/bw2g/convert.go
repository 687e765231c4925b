// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bw2g/internal/bitwarden"
	"github.com/pdiddy/bw2g/internal/google"
	"github.com/pdiddy/bw2g/internal/history"
	"github.com/pdiddy/bw2g/pkg/types"
)

const defaultOutput = "google_passwords.csv"

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Bitwarden export to a Google Passwords CSV",
	Long: `Convert reads a Bitwarden export (format inferred from the .csv or
.json extension) and writes a Google Passwords import CSV. The whole
export is parsed before anything is written, so a format error leaves
no partial output behind.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	cfg := convertConfig(cmd)

	res, err := bitwarden.Parse(input)
	if err != nil {
		return err
	}

	sum, err := google.Convert(res, cfg.OutputPath, os.Stdout)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := google.WriteReport(cfg.ReportPath, input, cfg.OutputPath, sum, res.Skipped); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", cfg.ReportPath)
	}

	if cfg.HistoryDB != "" {
		if err := recordRun(cfg.HistoryDB, input, cfg.OutputPath, sum); err != nil {
			// A failed log entry should not fail a conversion that already
			// produced its output file.
			fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
		}
	}

	return nil
}

// convertConfig resolves run settings from flags, falling back to the
// config file for anything unset.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	return types.ConvertConfig{
		OutputPath: flagOrConfig(cmd, "output", "output_path", defaultOutput),
		ReportPath: flagOrConfig(cmd, "report", "report_path", ""),
		HistoryDB:  flagOrConfig(cmd, "history-db", "history_db", ""),
	}
}

func recordRun(dbPath, input, output string, sum google.Summary) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(context.Background(), history.RunEntry{
		Input:       input,
		Output:      output,
		Converted:   sum.Converted,
		Unsupported: sum.Unsupported,
		Skipped:     sum.Skipped,
	})
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "path to the Bitwarden export file (CSV or JSON)")
	convertCmd.Flags().StringP("output", "o", "", "destination CSV path (default "+defaultOutput+")")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")
	convertCmd.Flags().String("history-db", "", "record this run in a SQLite run log at this path")
	convertCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(convertCmd)
}
