// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"strings"

	"github.com/google/uuid"
)

// maxLen keeps slugs short enough to stay readable in URLs.
const maxLen = 64

// Make normalizes a display name into a slug: lowercase, runs of anything
// outside [a-z0-9] collapse into single dashes. Empty input yields "untitled".
func Make(name string) string {
	var out strings.Builder
	dash := false

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out.WriteRune(r)
			dash = false
		case !dash && out.Len() > 0:
			out.WriteByte('-')
			dash = true
		}
	}

	s := strings.TrimRight(out.String(), "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	if s == "" {
		return "untitled"
	}

	return s
}

// WithSuffix appends a short random fragment, used to dedupe a slug that
// collided with an existing one.
func WithSuffix(s string) string {
	return s + "-" + uuid.NewString()[:8]
}
