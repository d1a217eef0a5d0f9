// Package sanitize strips markup from user supplied free text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML tags and trims surrounding whitespace.
// bluemonday escapes entities in its output; they are unescaped so that
// "O'Brien" round-trips unchanged.
func Text(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Texts applies Text to every pointer in place.
func Texts(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = Text(*f)
		}
	}
}
