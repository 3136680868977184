package url_utils

import (
	"regexp"
	"strings"

	"discussion-fetcher/domain"
)

var bareURLPattern = regexp.MustCompile(`https?://[^\s<>"'()\[\]]+`)

// ExtractURLs returns the bare http(s) URLs in text, in order, with trailing punctuation trimmed.
func ExtractURLs(text string) []string {
	matches := bareURLPattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?")
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// BuildCommentLinks scans every comment's text for URLs and returns them deduplicated by
// normalized URL. anchorTitles is keyed by normalized URL; the first comment to mention a
// URL owns the link.
func BuildCommentLinks(comments []domain.Comment, anchorTitles map[string]string) []domain.Link {
	links := []domain.Link{}
	seen := make(map[string]struct{})

	for _, c := range comments {
		for _, raw := range ExtractURLs(c.Text) {
			normalized, ok := NormalizeURL(raw)
			if !ok {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}
			links = append(links, domain.Link{
				URL:       normalized,
				Source:    domain.LinkSourceComment,
				Title:     anchorTitles[normalized],
				CommentID: c.CommentID,
			})
		}
	}
	return links
}
