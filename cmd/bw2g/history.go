// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bw2g/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past conversion runs from the run log",
	Long: `History lists runs recorded with convert --history-db, newest first.
The log is only ever written when --history-db (or the history_db config
key) is set.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := flagOrConfig(cmd, "history-db", "history_db", "")
	if dbPath == "" {
		return fmt.Errorf("no run log configured: pass --history-db or set history_db in the config file")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-20s  %-30s  %-30s  %9s  %11s  %7s\n",
		"When", "Input", "Output", "Converted", "Unsupported", "Skipped")
	for _, e := range entries {
		fmt.Printf("%-20s  %-30s  %-30s  %9d  %11d  %7d\n",
			e.Timestamp.Local().Format(time.DateTime),
			truncate(e.Input, 30), truncate(e.Output, 30),
			e.Converted, e.Unsupported, e.Skipped)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	historyCmd.Flags().String("history-db", "", "path to the SQLite run log")
	historyCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")

	rootCmd.AddCommand(historyCmd)
}
