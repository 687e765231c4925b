// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package google

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk record of one conversion run, written when the
// user asks for a report file. It answers "what happened to my vault"
// after the terminal output is gone.
type Report struct {
	Input   string        `yaml:"input"`
	Output  string        `yaml:"output"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportSummary mirrors Summary with the skip reasons and a timestamp.
type ReportSummary struct {
	Converted   int       `yaml:"converted"`
	Unsupported int       `yaml:"unsupported"`
	Skipped     int       `yaml:"skipped"`
	SkipReasons []string  `yaml:"skip_reasons,omitempty"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteReport saves the run summary as YAML at path.
func WriteReport(path, input, output string, sum Summary, skipReasons []string) error {
	report := Report{
		Input:  input,
		Output: output,
		Summary: ReportSummary{
			Converted:   sum.Converted,
			Unsupported: sum.Unsupported,
			Skipped:     sum.Skipped,
			SkipReasons: skipReasons,
			Timestamp:   time.Now(),
		},
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
