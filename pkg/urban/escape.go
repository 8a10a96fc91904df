package urban

import (
	"net/url"
	"strings"
)

// escapeQueryValue percent-encodes s so that only unreserved characters
// (ALPHA / DIGIT / "-" / "." / "_" / "~") stay literal. Spaces become %20.
func escapeQueryValue(s string) string {
	// QueryEscape already encodes a literal '+' as %2B, so any '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
