// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bw2g CLI, a one-shot converter
// from Bitwarden export files to the Google Passwords CSV import format.
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

// rootCmd is the base command for the bw2g CLI.
var rootCmd = &cobra.Command{
	Use:   "bw2g",
	Short: "Convert Bitwarden exports to the Google Passwords CSV format",
	Long: `bw2g converts a Bitwarden export file (CSV or JSON) into the CSV
format Google Passwords imports. Logins carry over as-is; secure notes
and identities are folded into the note column with synthesized, unique
usernames so Google's importer keeps every entry.

Payment cards and other unsupported item types are skipped, as are
logins with nothing to import; both are counted in the run summary.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bw2g.yaml or ~/.config/bw2g/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bw2g")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bw2g"))
		}
	}

	viper.SetEnvPrefix("BW2G")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig returns the flag value if set, then the config value,
// then the fallback.
func flagOrConfig(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
