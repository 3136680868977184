package service

import (
	"context"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver/hackernews_api"
	"discussion-fetcher/driver/reddit_api"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// DiscussionIngestionService fetches and stores the discussion of one content item.
type DiscussionIngestionService interface {
	FetchAndStoreDiscussion(ctx context.Context, contentID string, commentCap int) (*domain.FetchResult, error)
}

// DiscussionFetcher produces a payload for one platform. Returned errors are
// classified by the ingestion service.
type DiscussionFetcher interface {
	Fetch(ctx context.Context, item *domain.ContentItem, commentCap int) (*domain.FetchOutcome, error)
}

// MetadataDenormalizer copies preview values from a payload into the content item.
type MetadataDenormalizer interface {
	// Apply reports whether the content item metadata was saved.
	Apply(ctx context.Context, item *domain.ContentItem, payload *domain.DiscussionPayload) (bool, error)
}

// HackerNewsItemClient loads single items from the comment-tree API.
type HackerNewsItemClient interface {
	GetItem(ctx context.Context, id int64) (*hackernews_api.Item, error)
}

// RedditSubmissionClient loads a submission with its comment forest.
type RedditSubmissionClient interface {
	GetSubmission(ctx context.Context, id string) (*reddit_api.Submission, error)
}

// TechmemePageClient returns the HTML of a cluster page.
type TechmemePageClient interface {
	FetchPage(ctx context.Context, pageURL string) ([]byte, error)
}
