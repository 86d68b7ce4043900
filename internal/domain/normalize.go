package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = lower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

var nonSlugChar = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Slugify derives the legacy lexeme id from its name: the name is lowercased
// and every character outside [A-Za-z0-9_] becomes one underscore.
func Slugify(name string) string {
	return nonSlugChar.ReplaceAllString(lower(name), "_")
}

// lower applies full Unicode case mapping, so a single rune may expand
// (U+0130 becomes "i" plus a combining dot).
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
