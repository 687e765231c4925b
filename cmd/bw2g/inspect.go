// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bw2g/internal/bitwarden"
	"github.com/pdiddy/bw2g/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show what a Bitwarden export contains without converting it",
	Long: `Inspect parses an export and prints per-type counts and the entries
that a conversion would skip. Nothing is written.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	res, err := bitwarden.Parse(input)
	if err != nil {
		return err
	}

	counts := map[types.ItemType]int{}
	for _, rec := range res.Records {
		counts[rec.Type]++
	}

	fmt.Printf("%s:\n", input)
	fmt.Printf("  logins:       %d\n", counts[types.TypeLogin])
	fmt.Printf("  secure notes: %d\n", counts[types.TypeSecureNote])
	fmt.Printf("  identities:   %d\n", counts[types.TypeIdentity])
	fmt.Printf("  unsupported:  %d\n", res.Unsupported)
	fmt.Printf("  would skip:   %d\n", len(res.Skipped))
	for _, reason := range res.Skipped {
		fmt.Printf("    %s\n", reason)
	}
	return nil
}

func init() {
	inspectCmd.Flags().StringP("input", "i", "", "path to the Bitwarden export file (CSV or JSON)")
	inspectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(inspectCmd)
}
