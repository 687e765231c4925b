// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bitwarden parses Bitwarden export files (CSV or JSON) into the
// shared Record model. Payment cards and other unconvertible entries are
// counted and skipped rather than failing the whole export.
package bitwarden

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/bw2g/pkg/types"
)

// ParseResult is the outcome of parsing one export file.
type ParseResult struct {
	// Records holds the convertible entries in file order.
	Records []types.Record

	// Unsupported counts entries of types the converter does not handle
	// (payment cards, unknown type codes).
	Unsupported int

	// Skipped holds one human-readable reason per entry that was the
	// right type but missing the data needed to convert it.
	Skipped []string
}

// FormatError reports an export file that could not be parsed as the
// expected CSV or JSON shape. It is fatal: nothing was converted.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse reads the export at path, selecting the parser by file extension
// (.csv or .json). Any other extension is a *FormatError.
func Parse(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		res, err := ParseCSV(f)
		if err != nil {
			return ParseResult{}, &FormatError{Path: path, Err: err}
		}
		return res, nil
	case ".json":
		res, err := ParseJSON(f)
		if err != nil {
			return ParseResult{}, &FormatError{Path: path, Err: err}
		}
		return res, nil
	default:
		return ParseResult{}, &FormatError{
			Path: path,
			Err:  fmt.Errorf("unsupported file format %q: expected .csv or .json", filepath.Ext(path)),
		}
	}
}

// convertibleLogin reports whether a login record carries at least one of
// the fields the target format can key on. A login with no username, no
// password, and no URI has nothing to import.
func convertibleLogin(r types.Record) bool {
	return r.Username != "" || r.Password != "" || r.URI != ""
}
