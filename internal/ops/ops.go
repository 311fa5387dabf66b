// Package ops implements the operations shared by the CLI, web, and MCP
// surfaces: share text as a link, resolve a link back to text, and manage
// the recent-links history.
package ops

import "unicode/utf8"

// CountChars returns the character count as runes (not bytes).
// This correctly handles multi-byte UTF-8 characters.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}
