package reddit_api

import (
	"net/url"
	"strings"
)

const canonicalHost = "www.reddit.com"

// CanonicalSubmission forces https and the canonical host, and pulls the
// submission id out of the path. ok is false when no id can be found.
func CanonicalSubmission(raw string) (canonical string, id string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", "", false
	}

	host := strings.ToLower(u.Hostname())
	segments := splitPath(u.Path)

	switch {
	case host == "redd.it" || strings.HasSuffix(host, ".redd.it"):
		if len(segments) == 0 {
			return "", "", false
		}
		id = segments[0]
		u.Path = "/comments/" + id + "/"
	case host == "reddit.com" || strings.HasSuffix(host, ".reddit.com"):
		for i, s := range segments {
			if s == "comments" && i+1 < len(segments) {
				id = segments[i+1]
				break
			}
		}
	default:
		return "", "", false
	}

	if !validID(id) {
		return "", "", false
	}

	u.Scheme = "https"
	u.Host = canonicalHost
	u.Fragment = ""
	u.RawQuery = ""
	return u.String(), id, true
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validID(id string) bool {
	if id == "" || len(id) > 16 {
		return false
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
