// Package textutil normalizes extracted document text before it is stored or
// handed to the extraction layer.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	disallowedRe = regexp.MustCompile(`[^\w\s.,!?;:-]`)
)

// Clean strips characters outside the basic word/punctuation set, collapses
// whitespace runs to single spaces and trims the result. Stripping happens
// first so removals cannot leave a double space behind.
func Clean(text string) string {
	text = disallowedRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Truncate bounds text to at most limit runes. Downstream extraction has a
// context-size budget, so long documents are cut to a prefix.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
