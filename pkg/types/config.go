// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for a conversion run. Values come from
// flags, with the config file supplying defaults for anything unset.
type ConvertConfig struct {
	// OutputPath is the destination CSV (default "google_passwords.csv").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// ReportPath, when non-empty, is where the YAML run report is written.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// HistoryDB, when non-empty, enables the SQLite run log at this path.
	// Left empty, a run touches nothing but the input and output files.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`
}
