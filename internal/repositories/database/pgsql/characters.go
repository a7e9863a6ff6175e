package pgsql

import "strings"

// parseCharacters decodes the characters column, which stores a JSON-style
// array literal such as ["Batman","Bruce Wayne"]. An empty value decodes to
// an empty slice, never nil, so responses render [] rather than null.
func parseCharacters(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	trimmed := strings.TrimPrefix(s, `["`)
	trimmed = strings.TrimSuffix(trimmed, `"]`)
	return strings.Split(trimmed, `","`)
}
