// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bitwarden

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/bw2g/pkg/types"
)

// Numeric item type codes used by the Bitwarden JSON export.
const (
	jsonTypeLogin      = 1
	jsonTypeSecureNote = 2
	jsonTypeCard       = 3
	jsonTypeIdentity   = 4
)

// jsonExport mirrors the top level of a Bitwarden JSON export. Fields the
// converter does not use (folders, collections) are ignored.
type jsonExport struct {
	Items []jsonItem `json:"items"`
}

type jsonItem struct {
	Type     int           `json:"type"`
	Name     string        `json:"name"`
	Notes    string        `json:"notes"`
	Login    *jsonLogin    `json:"login"`
	Identity *jsonIdentity `json:"identity"`
}

type jsonLogin struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	URIs     []jsonURI `json:"uris"`
}

type jsonURI struct {
	URI string `json:"uri"`
}

type jsonIdentity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Company   string `json:"company"`
}

// ParseJSON reads a Bitwarden JSON export: a single object whose "items"
// list carries one entry per vault item. Cards and unknown type codes are
// counted as unsupported; item order is preserved.
func ParseJSON(r io.Reader) (ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading export: %w", err)
	}

	var export jsonExport
	if err := json.Unmarshal(data, &export); err != nil {
		return ParseResult{}, fmt.Errorf("decoding JSON: %w", err)
	}
	if export.Items == nil {
		return ParseResult{}, fmt.Errorf("no %q list: not a Bitwarden JSON export", "items")
	}

	var res ParseResult
	for _, item := range export.Items {
		switch item.Type {
		case jsonTypeLogin:
			rec := types.Record{
				Type:  types.TypeLogin,
				Name:  item.Name,
				Notes: item.Notes,
			}
			if item.Login != nil {
				rec.Username = item.Login.Username
				rec.Password = item.Login.Password
				if len(item.Login.URIs) > 0 {
					rec.URI = item.Login.URIs[0].URI
				}
			}
			if !convertibleLogin(rec) {
				res.Skipped = append(res.Skipped,
					fmt.Sprintf("%s: login has no username, password, or URI", item.Name))
				continue
			}
			res.Records = append(res.Records, rec)

		case jsonTypeSecureNote:
			res.Records = append(res.Records, types.Record{
				Type:  types.TypeSecureNote,
				Name:  item.Name,
				Notes: item.Notes,
			})

		case jsonTypeIdentity:
			rec := types.Record{
				Type:  types.TypeIdentity,
				Name:  item.Name,
				Notes: item.Notes,
			}
			if id := item.Identity; id != nil {
				rec.Identity = &types.IdentityFields{
					FirstName: id.FirstName,
					LastName:  id.LastName,
					Email:     id.Email,
					Phone:     id.Phone,
					Address:   id.Address1,
					Company:   id.Company,
				}
			} else {
				rec.Identity = &types.IdentityFields{}
			}
			res.Records = append(res.Records, rec)

		default:
			// Cards (type 3) and anything newer than this converter.
			res.Unsupported++
		}
	}
	return res, nil
}
