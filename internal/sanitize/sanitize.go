// Package sanitize cleans user supplied text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// maxPasses bounds how many layers of entity encoding Text unwraps.
const maxPasses = 4

// Text strips every HTML element from s and returns plain, trimmed text.
// Entities are decoded, and the result is sanitized again until stable, so
// encoded markup such as "&lt;script&gt;" cannot come back as a tag.
func Text(s string) string {
	if s == "" {
		return ""
	}
	out := s
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// Still changing: keep the escaped form.
	return strings.TrimSpace(strict.Sanitize(out))
}

// HTML keeps a safe subset of formatting markup in s, suitable for campaign
// descriptions rendered as rich text.
func HTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(ugc.Sanitize(s))
}

// OptionalText applies Text to *s and maps blank results to nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Excerpt returns at most n runes of s.
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
