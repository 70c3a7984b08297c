// Package slug derives URL-fragment-safe anchor identifiers from headings.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlphanum = regexp.MustCompile(`[^a-z0-9]+`)
	wellFormed  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Make converts a heading into a lowercase, hyphen-delimited identifier
// suitable as an anchor id and href fragment. Every run of characters
// outside [a-z0-9] collapses to a single hyphen, with no hyphen at either
// end. Applying Make to its own output returns the same string.
//
// The result is empty only when the input contains no alphanumerics.
func Make(heading string) string {
	s := strings.ToLower(heading)
	s = nonAlphanum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s is already a well-formed slug, i.e. Make(s) == s
// and s is non-empty.
func Valid(s string) bool {
	return wellFormed.MatchString(s)
}
