// Package normalize provides canonical forms for user-supplied fields.
// Emails and roles are compared case-insensitively everywhere, so they
// are stored lowercased; names keep their case but lose stray whitespace.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Unit trims a unit label (flat number) without case folding; "4B" and
// "4b" are different labels to property managers.
func Unit(s string) string {
	return strings.TrimSpace(s)
}
