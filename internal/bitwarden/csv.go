// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bitwarden

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/bw2g/pkg/types"
)

// ParseCSV reads a Bitwarden CSV export. The first row is a header; rows
// are keyed by column name so extra columns (folder, favorite, reprompt,
// custom fields) pass through harmlessly. Row order is preserved.
func ParseCSV(r io.Reader) (ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return ParseResult{}, fmt.Errorf("empty file")
	}
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["name"]; !ok {
		return ParseResult{}, fmt.Errorf("header has no %q column: not a Bitwarden CSV export", "name")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var res ParseResult
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParseResult{}, fmt.Errorf("line %d: %w", line, err)
		}

		rec := types.Record{
			Name:     field(row, "name"),
			URI:      field(row, "login_uri"),
			Username: field(row, "login_username"),
			Password: field(row, "login_password"),
			Notes:    field(row, "notes"),
		}

		switch strings.ToLower(field(row, "type")) {
		case "login", "":
			// Older exports omit the type column; treat rows as logins.
			rec.Type = types.TypeLogin
			if !convertibleLogin(rec) {
				res.Skipped = append(res.Skipped,
					fmt.Sprintf("line %d (%s): login has no username, password, or URI", line, rec.Name))
				continue
			}
		case "note":
			rec.Type = types.TypeSecureNote
		case "identity":
			rec.Type = types.TypeIdentity
			rec.Identity = &types.IdentityFields{
				FirstName: field(row, "first_name"),
				LastName:  field(row, "last_name"),
				Email:     field(row, "email"),
				Phone:     field(row, "phone"),
				Address:   field(row, "address1"),
				Company:   field(row, "company"),
			}
		default:
			res.Unsupported++
			continue
		}

		res.Records = append(res.Records, rec)
	}
	return res, nil
}
