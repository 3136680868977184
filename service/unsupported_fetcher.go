package service

import (
	"context"
	"fmt"

	"discussion-fetcher/domain"
	"discussion-fetcher/utils/url_utils"
)

type unsupportedFetcher struct{}

// NewUnsupportedFetcher returns the fallback used when no platform matches. It never fails.
func NewUnsupportedFetcher() DiscussionFetcher {
	return unsupportedFetcher{}
}

func (unsupportedFetcher) Fetch(_ context.Context, item *domain.ContentItem, commentCap int) (*domain.FetchOutcome, error) {
	sourceURL, _ := url_utils.NormalizeURL(item.DiscussionURL())
	payload := domain.NewPayload(domain.ModeNone, sourceURL, commentCap)

	tag := item.PlatformTag()
	if tag == "" {
		tag = "unknown"
	}
	return partialOutcome(payload, fmt.Sprintf("discussion fetching is not supported for platform %q", tag)), nil
}
