// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bitwarden

import (
	"strings"
	"testing"

	"github.com/pdiddy/bw2g/pkg/types"
)

const sampleCSV = `folder,favorite,type,name,notes,fields,reprompt,login_uri,login_username,login_password
,,login,GitHub,,,0,https://github.com,alice,secret123
,,note,Wifi,hunter2 is the wifi password,,0,,,
,,identity,Me,extra notes,,0,,,
Work,,login,Empty Login,,,0,,,
,,sshkey,Server Key,,,0,,,
`

func TestParseCSV(t *testing.T) {
	res, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	if len(res.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(res.Records))
	}
	if res.Unsupported != 1 {
		t.Errorf("Unsupported = %d, want 1 (sshkey row)", res.Unsupported)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("len(Skipped) = %d, want 1 (empty login)", len(res.Skipped))
	}
	if !strings.Contains(res.Skipped[0], "Empty Login") {
		t.Errorf("Skipped[0] = %q, want the entry name in the reason", res.Skipped[0])
	}

	login := res.Records[0]
	if login.Type != types.TypeLogin {
		t.Errorf("Records[0].Type = %q, want %q", login.Type, types.TypeLogin)
	}
	if login.Name != "GitHub" || login.URI != "https://github.com" ||
		login.Username != "alice" || login.Password != "secret123" {
		t.Errorf("login fields = %+v, want the raw CSV values unchanged", login)
	}

	note := res.Records[1]
	if note.Type != types.TypeSecureNote {
		t.Errorf("Records[1].Type = %q, want %q", note.Type, types.TypeSecureNote)
	}
	if note.Name != "Wifi" || note.Notes != "hunter2 is the wifi password" {
		t.Errorf("note fields = %+v", note)
	}

	identity := res.Records[2]
	if identity.Type != types.TypeIdentity {
		t.Errorf("Records[2].Type = %q, want %q", identity.Type, types.TypeIdentity)
	}
	if identity.Identity == nil {
		t.Error("identity record should carry IdentityFields")
	}
}

func TestParseCSVOrderPreserved(t *testing.T) {
	csv := "type,name,login_uri,login_username,login_password,notes\n"
	names := []string{"c", "a", "b", "z", "m"}
	for _, n := range names {
		csv += "login," + n + ",https://" + n + ".example.com,user-" + n + ",pw,\n"
	}

	res, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(res.Records) != len(names) {
		t.Fatalf("len(Records) = %d, want %d", len(res.Records), len(names))
	}
	for i, n := range names {
		if res.Records[i].Name != n {
			t.Errorf("Records[%d].Name = %q, want %q (input order)", i, res.Records[i].Name, n)
		}
	}
}

func TestParseCSVMissingTypeColumn(t *testing.T) {
	// Older exports have no type column; every row is a login.
	csv := "name,login_uri,login_username,login_password,notes\n" +
		"GitHub,https://github.com,alice,secret123,\n"

	res, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].Type != types.TypeLogin {
		t.Fatalf("Records = %+v, want one login", res.Records)
	}
}

func TestParseCSVQuotedFields(t *testing.T) {
	csv := "type,name,login_uri,login_username,login_password,notes\n" +
		`login,Tracker,"https://example.com/search?ids=1,2,3",bob,"p,w","line one` + "\n" + `line two"` + "\n"

	res, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	rec := res.Records[0]
	if rec.URI != "https://example.com/search?ids=1,2,3" {
		t.Errorf("URI = %q, comma should survive quoting", rec.URI)
	}
	if rec.Password != "p,w" {
		t.Errorf("Password = %q, want %q", rec.Password, "p,w")
	}
	if rec.Notes != "line one\nline two" {
		t.Errorf("Notes = %q, newline should survive quoting", rec.Notes)
	}
}

func TestParseCSVNotAnExport(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("a,b,c\n1,2,3\n")); err == nil {
		t.Error("ParseCSV should reject a CSV without a name column")
	}
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("ParseCSV should reject an empty file")
	}
}
