// ABOUTME: Extracts the labeled link groups of one item on a Techmeme cluster page
// ABOUTME: Links to social and forum hosts are turned into comment-shaped previews
package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"discussion-fetcher/domain"
	"discussion-fetcher/utils/html_parser"
	"discussion-fetcher/utils/url_utils"
)

const (
	techmemeMarkerAttr     = "pml"
	techmemeContainerClass = ".clus"
	techmemeLabelClass     = ".drhed"
)

var (
	techmemeDatePattern  = regexp.MustCompile(`^\d{6}$`)
	techmemePagePattern  = regexp.MustCompile(`^p\d+$`)
	techmemeTokenPattern = regexp.MustCompile(`^\d{6}p\d+$`)
)

type techmemeFetcher struct {
	client        TechmemePageClient
	compactBudget int
	logger        *slog.Logger
}

func NewTechmemeFetcher(client TechmemePageClient, compactBudget int, logger *slog.Logger) DiscussionFetcher {
	return &techmemeFetcher{client: client, compactBudget: compactBudget, logger: logger}
}

func (f *techmemeFetcher) Fetch(ctx context.Context, item *domain.ContentItem, commentCap int) (*domain.FetchOutcome, error) {
	rawURL := item.DiscussionURL()
	pageURL := url_utils.StripFragment(rawURL)
	if pageURL == "" {
		payload := domain.NewPayload(domain.ModeDiscussionList, "", commentCap)
		return partialOutcome(payload, "the content item has no Techmeme discussion URL"), nil
	}
	if !strings.Contains(pageURL, "://") {
		pageURL = "https://" + strings.TrimPrefix(pageURL, "//")
	}

	payload := domain.NewPayload(domain.ModeDiscussionList, pageURL, commentCap)

	body, err := f.client.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch techmeme page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse techmeme page: %w", err)
	}

	candidates := techmemeTokenCandidates(rawURL, item.AggregatorExternalID())
	marker := f.findMarker(ctx, doc, candidates, pageURL)

	var groups []domain.DiscussionGroup
	if marker != nil {
		groups = extractTechmemeGroups(techmemeContainer(marker), pageURL)
	}

	itemCount := 0
	for _, g := range groups {
		itemCount += len(g.Items)
	}
	groupCount := len(groups)
	payload.Stats.GroupCount = &groupCount
	payload.Stats.ItemCount = &itemCount

	if groups != nil {
		payload.DiscussionGroups = groups
	}
	payload.Links = techmemeLinks(groups)

	comments, capReached := f.socialComments(groups, commentCap)
	payload.SetComments(comments)
	payload.Stats.CapReached = capReached

	if groupCount == 0 {
		return partialOutcome(payload, "no discussion groups were found for this Techmeme item"), nil
	}
	return &domain.FetchOutcome{Status: domain.StatusCompleted, Payload: payload}, nil
}

// findMarker returns the marker element for the first candidate present on the page,
// else the first marker of any item.
func (f *techmemeFetcher) findMarker(ctx context.Context, doc *goquery.Document, candidates []string, pageURL string) *goquery.Selection {
	for _, token := range candidates {
		sel := doc.Find(fmt.Sprintf(`[%s=%q]`, techmemeMarkerAttr, token)).First()
		if sel.Length() > 0 {
			return sel
		}
	}

	// TODO: drop this fallback once aggregator external ids are present on every stored Techmeme item.
	first := doc.Find("[" + techmemeMarkerAttr + "]").First()
	if first.Length() == 0 {
		return nil
	}
	token, _ := first.Attr(techmemeMarkerAttr)
	f.logger.WarnContext(ctx, "techmeme item token not found, using first item on page",
		"page_url", pageURL,
		"candidates", candidates,
		"used_token", token)
	return first
}

// techmemeTokenCandidates derives item tokens ("251017p5") from the URL path, the
// URL fragment and the aggregator external id, in that order.
func techmemeTokenCandidates(rawURL, externalID string) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(token string) {
		token = strings.TrimSpace(token)
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	raw := strings.TrimSpace(rawURL)
	if raw != "" && !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}
	if u, err := url.Parse(raw); err == nil && raw != "" {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i := 0; i+1 < len(segments); i++ {
			if techmemeDatePattern.MatchString(segments[i]) && techmemePagePattern.MatchString(segments[i+1]) {
				add(segments[i] + segments[i+1])
				break
			}
		}
		if frag := strings.TrimPrefix(u.Fragment, "a"); techmemeTokenPattern.MatchString(frag) {
			add(frag)
		}
	}

	ext := strings.TrimPrefix(strings.TrimSpace(externalID), "#")
	add(strings.TrimPrefix(ext, "a"))

	return out
}

func techmemeContainer(marker *goquery.Selection) *goquery.Selection {
	if c := marker.Closest(techmemeContainerClass); c.Length() > 0 {
		return c
	}
	if p := marker.Parent(); p.Length() > 0 {
		return p
	}
	return marker
}

// extractTechmemeGroups collects "Label:" headings and the links that follow them
// up to the next heading. Empty groups are dropped.
func extractTechmemeGroups(container *goquery.Selection, pageURL string) []domain.DiscussionGroup {
	var groups []domain.DiscussionGroup

	container.Find(techmemeLabelClass).Each(func(_ int, label *goquery.Selection) {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label.Text()), ":"))
		if name == "" {
			return
		}

		group := domain.DiscussionGroup{Label: name, Items: []domain.GroupItem{}}
		index := map[string]int{}

		collect := func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			normalized, ok := url_utils.NormalizeURL(url_utils.Resolve(pageURL, href))
			if !ok {
				return
			}
			title := strings.Join(strings.Fields(a.Text()), " ")
			if title == "" {
				title = normalized
			}
			if i, dup := index[normalized]; dup {
				if group.Items[i].Title == normalized && title != normalized {
					group.Items[i].Title = title
				}
				return
			}
			index[normalized] = len(group.Items)
			group.Items = append(group.Items, domain.GroupItem{Title: title, URL: normalized})
		}

		for sib := label.Next(); sib.Length() > 0; sib = sib.Next() {
			if sib.Is(techmemeLabelClass) || sib.Find(techmemeLabelClass).Length() > 0 {
				break
			}
			if sib.Is("a[href]") {
				collect(0, sib)
			}
			sib.Find("a[href]").Each(collect)
		}

		if len(group.Items) > 0 {
			groups = append(groups, group)
		}
	})

	return groups
}

// techmemeLinks flattens groups into links, first occurrence of a URL wins.
func techmemeLinks(groups []domain.DiscussionGroup) []domain.Link {
	links := []domain.Link{}
	seen := map[string]struct{}{}
	for _, g := range groups {
		for _, it := range g.Items {
			if _, ok := seen[it.URL]; ok {
				continue
			}
			seen[it.URL] = struct{}{}
			links = append(links, domain.Link{
				URL:        it.URL,
				Source:     domain.LinkSourceDiscussionGroup,
				Title:      it.Title,
				GroupLabel: g.Label,
			})
		}
	}
	return links
}

func (f *techmemeFetcher) socialComments(groups []domain.DiscussionGroup, commentCap int) ([]domain.Comment, bool) {
	comments := []domain.Comment{}
	seen := map[string]struct{}{}
	for _, g := range groups {
		for _, it := range g.Items {
			if !url_utils.IsSocialDomain(it.URL) {
				continue
			}
			if _, ok := seen[it.URL]; ok {
				continue
			}
			if len(comments) >= commentCap {
				return comments, true
			}
			seen[it.URL] = struct{}{}

			text := html_parser.Clean(it.Title)
			comments = append(comments, domain.Comment{
				CommentID:   it.URL,
				Author:      url_utils.BareDomain(it.URL),
				Text:        text,
				CompactText: html_parser.Compact(text, f.compactBudget),
				SourceURL:   it.URL,
			})
		}
	}
	return comments, false
}
