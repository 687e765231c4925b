// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the export converter:
// parsed Bitwarden records, Google Passwords output rows, and the
// per-stage configuration structs.
package types

// ItemType identifies the kind of entry in a Bitwarden export.
// The JSON export encodes these as numeric codes (1=login, 2=secure note,
// 3=card, 4=identity); the CSV export uses the string names.
type ItemType string

const (
	TypeLogin      ItemType = "login"
	TypeSecureNote ItemType = "note"
	TypeIdentity   ItemType = "identity"
)

// Record is one entry parsed from a Bitwarden export, normalized across
// the CSV and JSON input shapes. A Record is immutable once the parser
// returns it.
type Record struct {
	// Type selects which mapping applies when emitting the output row.
	Type ItemType

	// Name is the entry title (e.g. "GitHub", "Wifi").
	Name string

	// URI is the raw login_uri value. Bitwarden may store several URIs
	// comma-joined; normalization happens at output time.
	URI string

	Username string
	Password string
	Notes    string

	// Identity is set only for identity records.
	Identity *IdentityFields
}

// IdentityFields holds the structured personal data of an identity entry.
// Only the fields carried into the output note are kept.
type IdentityFields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Company   string
}

// Row is one row of the Google Passwords import CSV. All fields are
// optional, but at least one is always non-empty for rows the mapper
// produces.
type Row struct {
	URL      string
	Username string
	Password string
	Note     string
}
