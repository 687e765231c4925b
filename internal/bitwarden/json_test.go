// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bitwarden

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/bw2g/pkg/types"
)

const sampleJSON = `{
  "items": [
    {
      "type": 1,
      "name": "GitHub",
      "notes": "work account",
      "login": {
        "username": "alice",
        "password": "secret123",
        "uris": [
          {"uri": "androidapp://com.github.android"},
          {"uri": "https://github.com"}
        ]
      }
    },
    {"type": 2, "name": "Wifi", "notes": "hunter2"},
    {
      "type": 3,
      "name": "Visa",
      "card": {"number": "4111111111111111"}
    },
    {
      "type": 4,
      "name": "Me",
      "identity": {
        "firstName": "Alice",
        "lastName": "Smith",
        "email": "alice@example.com",
        "phone": "555-0100",
        "address1": "1 Main St",
        "company": "Acme"
      }
    },
    {"type": 1, "name": "Orphan Login", "login": {}}
  ]
}`

func TestParseJSON(t *testing.T) {
	res, err := ParseJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if len(res.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3 (login, note, identity)", len(res.Records))
	}
	if res.Unsupported != 1 {
		t.Errorf("Unsupported = %d, want 1 (the card)", res.Unsupported)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("len(Skipped) = %d, want 1 (login with no fields)", len(res.Skipped))
	}

	login := res.Records[0]
	if login.Type != types.TypeLogin || login.Username != "alice" || login.Password != "secret123" {
		t.Errorf("login = %+v", login)
	}
	if login.URI != "androidapp://com.github.android" {
		t.Errorf("URI = %q, want the first uris entry verbatim", login.URI)
	}
	if login.Notes != "work account" {
		t.Errorf("Notes = %q, want %q", login.Notes, "work account")
	}

	note := res.Records[1]
	if note.Type != types.TypeSecureNote || note.Name != "Wifi" || note.Notes != "hunter2" {
		t.Errorf("note = %+v", note)
	}

	identity := res.Records[2]
	if identity.Type != types.TypeIdentity {
		t.Fatalf("Records[2].Type = %q, want %q", identity.Type, types.TypeIdentity)
	}
	id := identity.Identity
	if id == nil {
		t.Fatal("identity record should carry IdentityFields")
	}
	if id.FirstName != "Alice" || id.LastName != "Smith" || id.Email != "alice@example.com" ||
		id.Phone != "555-0100" || id.Address != "1 Main St" || id.Company != "Acme" {
		t.Errorf("IdentityFields = %+v", *id)
	}
}

func TestParseJSONBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not JSON", "type,name\nlogin,GitHub\n"},
		{"wrong shape", `{"folders": []}`},
		{"top-level list", `[{"type": 1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ParseJSON(%q) should fail", tt.input)
			}
		})
	}
}

func TestParseJSONEmptyItems(t *testing.T) {
	res, err := ParseJSON(strings.NewReader(`{"items": []}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(res.Records) != 0 || res.Unsupported != 0 || len(res.Skipped) != 0 {
		t.Errorf("result = %+v, want all zero", res)
	}
}

func TestParseDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "export.json")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := Parse(jsonPath)
	if err != nil {
		t.Fatalf("Parse(.json): %v", err)
	}
	if len(res.Records) != 3 {
		t.Errorf("len(Records) = %d, want 3", len(res.Records))
	}

	csvPath := filepath.Join(dir, "export.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(csvPath); err != nil {
		t.Fatalf("Parse(.csv): %v", err)
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.txt")
	if err := os.WriteFile(path, []byte("whatever"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Parse(path)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Parse(.txt) error = %v, want *FormatError", err)
	}
	if formatErr.Path != path {
		t.Errorf("FormatError.Path = %q, want %q", formatErr.Path, path)
	}
}

func TestParseMismatchedContent(t *testing.T) {
	// A JSON payload behind a .csv extension is a format error, not a
	// silent zero-record success.
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Parse(path)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Parse error = %v, want *FormatError", err)
	}
}
