package url_utils

import "strings"

// socialDomains are microblogging, link-aggregator, forum and professional-network hosts.
var socialDomains = []string{
	"twitter.com",
	"x.com",
	"bsky.app",
	"threads.net",
	"mastodon.social",
	"news.ycombinator.com",
	"reddit.com",
	"lobste.rs",
	"linkedin.com",
	"facebook.com",
}

// IsSocialDomain reports whether rawURL's host is, or is a subdomain of, a known social host.
func IsSocialDomain(rawURL string) bool {
	host := Hostname(rawURL)
	if host == "" {
		return false
	}
	for _, d := range socialDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// BareDomain returns the host of rawURL without a leading "www.".
func BareDomain(rawURL string) string {
	return strings.TrimPrefix(Hostname(rawURL), "www.")
}
