// Package utils provides small input-normalization helpers shared by the
// service layer.
package utils

import (
	"html"
	"regexp"
	"strings"
)

// phonePattern accepts common phone spellings: an optional leading "+",
// digits, and separator characters. Length bounds keep out junk without
// rejecting international formats.
var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9()\-. ]{5,18}[0-9]$`)

// DecodeField trims surrounding whitespace and resolves any HTML entity
// escaping applied by an upstream sanitizer back to raw text. Stored
// names are not escaped, so comparisons must run on the decoded form
// (e.g. "Tots &amp; Tumblers" must match the stored "Tots & Tumblers").
func DecodeField(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

// ValidPhone reports whether s is a syntactically plausible phone
// number. It checks shape only; no carrier or region validation.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}
