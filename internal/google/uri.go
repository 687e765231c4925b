// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package google

import "strings"

// formatURI normalizes a Bitwarden login_uri value to what the Google
// Passwords importer matches on. Bitwarden may store several URIs
// comma-joined (typically an androidapp:// link plus the web URL); the
// web URL wins. A full http(s) URL is kept verbatim so query strings and
// paths survive the round trip.
func formatURI(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(u)
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			return u
		}
		if strings.Contains(u, ".") && !strings.HasPrefix(u, "androidapp://") {
			return "https://" + u
		}
	}

	// Only app links left: rewrite to the android:// form Google expects.
	return strings.ReplaceAll(raw, "androidapp://", "android://@")
}
