// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package google maps parsed Bitwarden records onto the Google Passwords
// CSV import format and writes the output file. Secure notes and
// identities get synthesized usernames, uniquified across the run, so
// Google's username+URL dedup key never collapses two entries.
package google

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/bw2g/internal/bitwarden"
	"github.com/pdiddy/bw2g/pkg/types"
)

// Header is the fixed column order of the Google Passwords import CSV.
var Header = []string{"url", "username", "password", "note"}

// WriteError reports a destination file that could not be created or
// written. It is fatal: the output is incomplete or absent.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Summary holds the outcome of one conversion run.
type Summary struct {
	Converted   int
	Unsupported int
	Skipped     int
}

// Total returns the number of entries seen in the input.
func (s Summary) Total() int {
	return s.Converted + s.Unsupported + s.Skipped
}

// mapRecord converts one record to an output row. The second return
// value reports whether the username was synthesized rather than taken
// from the source, which marks it for the uniqueness pass.
func mapRecord(rec types.Record) (types.Row, bool) {
	switch rec.Type {
	case types.TypeSecureNote:
		return types.Row{
			Username: placeholder(rec.Name),
			Note:     joinNote(rec.Name, rec.Notes),
		}, true

	case types.TypeIdentity:
		row := types.Row{Note: identityNote(rec)}
		if rec.Identity != nil && rec.Identity.Email != "" {
			row.Username = rec.Identity.Email
			return row, false
		}
		row.Username = placeholder(rec.Name)
		return row, true

	default:
		return types.Row{
			URL:      formatURI(rec.URI),
			Username: rec.Username,
			Password: rec.Password,
			Note:     rec.Notes,
		}, false
	}
}

// MapRecords converts records to output rows in input order and
// uniquifies synthesized usernames across the whole set.
func MapRecords(records []types.Record) []types.Row {
	rows := make([]types.Row, len(records))
	synthesized := make([]bool, len(records))
	for i, rec := range records {
		rows[i], synthesized[i] = mapRecord(rec)
	}
	uniquify(rows, synthesized)
	return rows
}

// uniquify appends a numeric suffix to synthesized usernames that
// collide with any earlier username. The first occurrence keeps the
// bare name; later ones become name_2, name_3, and so on. Suffixed
// candidates are themselves checked so a natural "Wifi_2" never
// collides with a generated one.
func uniquify(rows []types.Row, synthesized []bool) {
	seen := make(map[string]int, len(rows))
	for i := range rows {
		name := rows[i].Username
		if name == "" {
			continue
		}
		n, dup := seen[name]
		if !dup {
			seen[name] = 1
			continue
		}
		if !synthesized[i] {
			// Natural usernames are emitted verbatim even on collision.
			continue
		}
		for {
			n++
			candidate := fmt.Sprintf("%s_%d", name, n)
			if _, taken := seen[candidate]; !taken {
				rows[i].Username = candidate
				seen[name] = n
				seen[candidate] = 1
				break
			}
		}
	}
}

// placeholder derives a username-like key from an entry name. Google's
// importer needs something in the username column for every row.
func placeholder(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "note"
	}
	return name
}

// joinNote builds a secure note's note field from its title and body.
func joinNote(name, body string) string {
	switch {
	case name == "":
		return body
	case body == "":
		return name
	default:
		return name + "\n" + body
	}
}

// identityNote serializes an identity record into labeled lines, the
// only representation the target format has for structured personal
// data. Empty fields are omitted.
func identityNote(rec types.Record) string {
	id := rec.Identity
	if id == nil {
		id = &types.IdentityFields{}
	}

	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}
	add("Name", strings.TrimSpace(id.FirstName+" "+id.LastName))
	add("Phone", id.Phone)
	add("Email", id.Email)
	add("Address", id.Address)
	add("Company", id.Company)
	add("Notes", rec.Notes)

	if len(lines) == 0 {
		return rec.Name
	}
	return strings.Join(lines, "\n")
}

// WriteCSV writes the header and rows to w with RFC-4180 quoting.
func WriteCSV(w io.Writer, rows []types.Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.URL, row.Username, row.Password, row.Note}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Convert maps the parsed records, writes the destination CSV, and
// prints a one-line summary to w. Destination failures come back as a
// *WriteError.
func Convert(res bitwarden.ParseResult, outPath string, w io.Writer) (Summary, error) {
	rows := MapRecords(res.Records)

	f, err := os.Create(outPath)
	if err != nil {
		return Summary{}, &WriteError{Path: outPath, Err: err}
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return Summary{}, &WriteError{Path: outPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return Summary{}, &WriteError{Path: outPath, Err: err}
	}

	sum := Summary{
		Converted:   len(rows),
		Unsupported: res.Unsupported,
		Skipped:     len(res.Skipped),
	}
	fmt.Fprintf(w, "Converted %d record(s) to %s (%d unsupported, %d skipped)\n",
		sum.Converted, outPath, sum.Unsupported, sum.Skipped)
	for _, reason := range res.Skipped {
		fmt.Fprintf(w, "skipped: %s\n", reason)
	}
	return sum, nil
}
