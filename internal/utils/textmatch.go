package utils

import (
	"strings"
)

// Normalize prepares free text for keyword matching. Latin script is
// case-folded; Thai script has no case and passes through untouched.
// No further normalization is applied, so matching against Thai keywords
// stays an exact substring test.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ContainsAny reports whether any of the keywords occurs in the
// normalized text.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every keyword occurs in the normalized text.
// An empty keyword list matches nothing.
func ContainsAll(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
