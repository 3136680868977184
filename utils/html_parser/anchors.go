package html_parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"discussion-fetcher/utils/url_utils"
)

var trivialAnchorTexts = map[string]struct{}{
	"here":       {},
	"link":       {},
	"this":       {},
	"this link":  {},
	"click here": {},
	"read more":  {},
	"more":       {},
	"source":     {},
	"website":    {},
	"[link]":     {},
}

// ExtractAnchorTitles harvests meaningful anchor texts from raw comment markup, keyed by
// normalized URL. Relative hrefs resolve against baseURL. The first title per URL wins.
func ExtractAnchorTitles(raw, baseURL string) map[string]string {
	titles := make(map[string]string)
	if !strings.Contains(raw, "<a") && !strings.Contains(raw, "<A") {
		return titles
	}

	doc, err := parseFragment(raw)
	if err != nil {
		return titles
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		normalized, ok := url_utils.NormalizeURL(url_utils.Resolve(baseURL, href))
		if !ok {
			return
		}
		if _, exists := titles[normalized]; exists {
			return
		}

		text := normalizeWhitespace(a.Text())
		if text == "" || isTrivialAnchorText(text) || textIsURL(text, href) {
			return
		}
		titles[normalized] = text
	})

	return titles
}

func isTrivialAnchorText(text string) bool {
	_, ok := trivialAnchorTexts[strings.ToLower(text)]
	return ok
}

// textIsURL reports whether the visible text is just the href, ignoring scheme, "www."
// and a trailing slash. Display-truncated URLs ("example.com/long/pa...") count too.
func textIsURL(text, href string) bool {
	t := bareForCompare(text)
	h := bareForCompare(href)
	if t == "" {
		return false
	}
	if t == h {
		return true
	}
	for _, suffix := range []string{"...", "…"} {
		if prefix, ok := strings.CutSuffix(t, suffix); ok && prefix != "" && strings.HasPrefix(h, prefix) {
			return true
		}
	}
	return false
}

func bareForCompare(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range []string{"https://", "http://", "//"} {
		if strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimRight(s, "/")
}

// parseFragment parses markup as body content instead of a full document.
func parseFragment(raw string) (*goquery.Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}
