package domain

import (
	"net/url"
	"strings"
)

// Platform is the closed set of discussion sources.
type Platform string

const (
	PlatformTechmeme    Platform = "techmeme"
	PlatformHackerNews  Platform = "hackernews"
	PlatformReddit      Platform = "reddit"
	PlatformUnsupported Platform = "unsupported"
)

var platformTags = map[string]Platform{
	"techmeme":    PlatformTechmeme,
	"hackernews":  PlatformHackerNews,
	"hacker_news": PlatformHackerNews,
	"hn":          PlatformHackerNews,
	"reddit":      PlatformReddit,
}

// ClassifyPlatform resolves the source for a content item. A recognised tag wins;
// otherwise the discussion URL host decides. It never touches the network.
func ClassifyPlatform(tag, discussionURL string) Platform {
	if p, ok := platformTags[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return p
	}

	raw := strings.TrimSpace(discussionURL)
	if raw == "" {
		return PlatformUnsupported
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		// scheme-less values like "news.ycombinator.com/item?id=1"
		u, err = url.Parse("https://" + raw)
		if err != nil {
			return PlatformUnsupported
		}
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case hostIs(host, "ycombinator.com") && strings.Contains(raw, "item"):
		return PlatformHackerNews
	case hostIs(host, "reddit.com") || hostIs(host, "redd.it"):
		return PlatformReddit
	case hostIs(host, "techmeme.com"):
		return PlatformTechmeme
	default:
		return PlatformUnsupported
	}
}

// hostIs reports whether host is domain or one of its subdomains.
func hostIs(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
