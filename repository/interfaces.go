package repository

import (
	"context"

	"discussion-fetcher/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// ContentItemRepository reads content items and writes back their side-metadata.
type ContentItemRepository interface {
	// FindByID returns domain.ErrContentNotFound when no item has the id.
	FindByID(ctx context.Context, contentID string) (*domain.ContentItem, error)
	SaveMetadata(ctx context.Context, contentID string, metadata map[string]any) error
}

// DiscussionRepository persists the single discussion record of a content item.
type DiscussionRepository interface {
	Upsert(ctx context.Context, record *domain.DiscussionRecord) error
	// FindByContentID returns (nil, nil) when nothing has been stored yet.
	FindByContentID(ctx context.Context, contentID string) (*domain.DiscussionRecord, error)
}
