package models

import "strings"

// NormalizeKey returns the canonical form used for natural-key
// comparison and search: whitespace-trimmed and lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
