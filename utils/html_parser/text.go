package html_parser

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultCompactBudget is the character budget of a compact comment rendering.
const DefaultCompactBudget = 400

const ellipsis = "…"

// stripPolicy removes every tag; block boundaries become spaces so "a<p>b" does not read "ab".
var stripPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// Clean turns a raw comment body into plain text: tags stripped, entities unescaped,
// whitespace collapsed.
func Clean(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	text := raw
	if strings.ContainsAny(text, "<&") {
		// bluemonday re-escapes text nodes, so unescape after stripping.
		text = html.UnescapeString(stripPolicy.Sanitize(text))
	}
	return normalizeWhitespace(text)
}

// Compact collapses whitespace and truncates text to budget characters, ending with an
// ellipsis when cut. A non-positive budget means DefaultCompactBudget.
func Compact(text string, budget int) string {
	if budget <= 0 {
		budget = DefaultCompactBudget
	}
	text = normalizeWhitespace(text)
	if utf8.RuneCountInString(text) <= budget {
		return text
	}

	runes := []rune(text)
	cut := strings.TrimRight(string(runes[:budget-1]), " ")
	return cut + ellipsis
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
