// ABOUTME: URL canonicalization used as the dedup key for payload links
// ABOUTME: Secure scheme is forced, host lower-cased, tracking params and trailing slash removed
package url_utils

import (
	"net/url"
	"strings"
)

var trackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign",
	"utm_term", "utm_content", "utm_id",
	"fbclid", "gclid", "mc_eid", "msclkid",
}

// NormalizeURL canonicalizes raw for comparison and storage.
// It returns false for empty input, non-http(s) schemes and values without a host.
//
// Example:
//
//	input:  "HTTP://Example.com/article/?utm_source=rss"
//	output: "https://example.com/article"
func NormalizeURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.ContainsAny(trimmed, " \t\n") {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "//"):
		trimmed = "https:" + trimmed
	case !strings.Contains(lower, "://"):
		// "mailto:x", "javascript:..." carry a scheme without "//"
		if i := strings.Index(lower, ":"); i > 0 && !looksLikeHostPort(lower) {
			return "", false
		}
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}

	u.Scheme = "https"
	u.Host = strings.ToLower(u.Host)

	if u.RawQuery != "" {
		q := u.Query()
		removed := false
		for _, p := range trackingParams {
			if q.Has(p) {
				q.Del(p)
				removed = true
			}
		}
		if removed {
			u.RawQuery = q.Encode()
		}
	}

	u.Path = strings.TrimRight(u.Path, "/")
	if u.RawPath != "" {
		u.RawPath = strings.TrimRight(u.RawPath, "/")
	}

	return u.String(), true
}

// looksLikeHostPort reports whether s is "host:port..." rather than "scheme:opaque".
func looksLikeHostPort(s string) bool {
	i := strings.Index(s, ":")
	rest := s[i+1:]
	if rest == "" {
		return false
	}
	end := strings.IndexAny(rest, "/?#")
	if end == -1 {
		end = len(rest)
	}
	port := rest[:end]
	if port == "" {
		return false
	}
	for _, r := range port {
		if r < '0' || r > '9' {
			return false
		}
	}
	return strings.Contains(s[:i], ".") || s[:i] == "localhost"
}

// StripFragment drops the #fragment from raw. Unparseable input is returned trimmed.
func StripFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil {
		if i := strings.Index(trimmed, "#"); i >= 0 {
			return trimmed[:i]
		}
		return trimmed
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// Resolve resolves href against base. An unusable base leaves href as-is.
func Resolve(base, href string) string {
	href = strings.TrimSpace(href)
	if base == "" {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// Hostname returns the lower-cased host of raw without port, or "".
func Hostname(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
