// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package google

import "testing"

func TestFormatURI(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"https kept verbatim", "https://github.com", "https://github.com"},
		{"http kept verbatim", "http://old.example.com/login", "http://old.example.com/login"},
		{"path and query survive", "https://example.com/search?ids=1,2", "https://example.com/search?ids=1,2"},
		{"bare domain gets scheme", "github.com", "https://github.com"},
		{"app link plus web url picks web", "androidapp://com.github.android,https://github.com", "https://github.com"},
		{"app link plus bare domain picks domain", "androidapp://com.github.android,github.com", "https://github.com"},
		{"app link alone rewritten", "androidapp://com.github.android", "android://@com.github.android"},
		{"whitespace trimmed", "  github.com ", "https://github.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatURI(tt.raw); got != tt.want {
				t.Errorf("formatURI(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
