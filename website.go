package brandmark

import (
	"net/url"
	"strings"
)

// placeholderTokens are strings that mean "no website" in imported records.
// Matched case-insensitively after trimming.
var placeholderTokens = map[string]bool{
	"":          true,
	"unknown":   true,
	"n/a":       true,
	"na":        true,
	"none":      true,
	"null":      true,
	"undefined": true,
}

// Normalize cleans a raw website string from an imported record.
// Placeholder tokens ("unknown", "n/a", ...) collapse to the empty string.
// A bare domain ("example.com") gets an https:// prefix. Anything else is
// returned trimmed and unchanged. Pure, no I/O.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if placeholderTokens[strings.ToLower(s)] {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if strings.Contains(s, ".") {
		return "https://" + s
	}
	return s
}

// IsValid reports whether raw normalizes to a fetchable http(s) URL.
func IsValid(raw string) bool {
	s := Normalize(raw)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// hostOf extracts the lowercased hostname from a raw website string,
// without a leading "www.". Returns "" when no valid host can be derived.
func hostOf(raw string) string {
	if !IsValid(raw) {
		return ""
	}
	parsed, err := url.Parse(Normalize(raw))
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}
