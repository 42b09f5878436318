// Package textutils provides text normalization helpers shared by the
// extraction pipeline.
package textutils

import (
	"strings"
)

// CollapseWhitespace normalizes visible text pulled out of markup: runs of
// whitespace (spaces, tabs, newlines) become single spaces and the result is
// trimmed. Returns "" for text with no visible characters.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// IsBlank reports whether text is empty or whitespace-only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// FirstNonBlank returns the first argument with visible characters,
// collapsed, or "".
func FirstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if !IsBlank(c) {
			return CollapseWhitespace(c)
		}
	}
	return ""
}

// ContainsAny reports whether text contains any of the given substrings.
// Matching is case-sensitive.
func ContainsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
