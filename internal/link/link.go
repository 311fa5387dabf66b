// Package link assembles and splits shareable links. A link is always
// base URL + '#' + token; the fragment is the sole payload channel.
package link

import "strings"

// Build joins a base URL and a token into a full shareable link.
// A trailing '#' on the base is tolerated so configs may spell it either way.
func Build(base, token string) string {
	base = strings.TrimRight(base, "#")
	return base + "#" + token
}

// Fragment extracts the candidate token from a raw input string.
// For a full link it is everything after the first '#'; an input without
// a '#' is treated as a bare token and passes through unchanged.
func Fragment(raw string) string {
	if idx := strings.Index(raw, "#"); idx >= 0 {
		return raw[idx+1:]
	}
	return raw
}
