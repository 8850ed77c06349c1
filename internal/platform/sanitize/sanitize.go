// Package sanitize strips markup from free-text input before it reaches the
// application core. Task titles and descriptions are plain text; any HTML a
// client sends is removed rather than rejected.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html/atom"
)

// tagLike matches anything shaped like an opening or closing tag, plus
// comments. Whether a match is real markup is decided by hasMarkup.
var tagLike = regexp.MustCompile(`<!--|</?([A-Za-z][A-Za-z0-9]*)\b[^<>]*>`)

// Text removes HTML elements from s and returns the remaining plain text.
// Input without a known HTML element is returned as typed, so "a &amp; b"
// and "Use <T> generics" survive. Text is safe for concurrent use.
type Text struct {
	policy *bluemonday.Policy
}

// NewText creates a sanitizer that allows no elements at all.
func NewText() *Text {
	return &Text{policy: bluemonday.StrictPolicy()}
}

// Clean returns s with markup removed. Entities in markup-bearing input are
// decoded, since in HTML "&amp;" means "&".
func (t *Text) Clean(s string) string {
	if !hasMarkup(s) {
		return s
	}
	return html.UnescapeString(t.policy.Sanitize(s))
}

// CleanPtr applies Clean to *s, preserving nil.
func (t *Text) CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := t.Clean(*s)
	return &cleaned
}

func hasMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	for _, m := range tagLike.FindAllStringSubmatch(s, -1) {
		if m[1] == "" {
			return true
		}
		if atom.Lookup([]byte(strings.ToLower(m[1]))) != 0 {
			return true
		}
	}
	return false
}
