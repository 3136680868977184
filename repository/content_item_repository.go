package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver"
)

type contentItemRepository struct {
	db     driver.PgxIface
	logger *slog.Logger
}

func NewContentItemRepository(db driver.PgxIface, logger *slog.Logger) ContentItemRepository {
	return &contentItemRepository{db: db, logger: logger}
}

func (r *contentItemRepository) FindByID(ctx context.Context, contentID string) (*domain.ContentItem, error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}
	if r.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	item, err := driver.GetContentItem(ctx, r.db, contentID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to load content item", "error", err, "content_id", contentID)
		return nil, fmt.Errorf("failed to load content item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrContentNotFound
	}

	return item, nil
}

func (r *contentItemRepository) SaveMetadata(ctx context.Context, contentID string, metadata map[string]any) error {
	if r.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if err := driver.UpdateContentItemMetadata(ctx, r.db, contentID, metadata); err != nil {
		r.logger.ErrorContext(ctx, "failed to save content item metadata", "error", err, "content_id", contentID)
		return fmt.Errorf("failed to save content item metadata: %w", err)
	}

	r.logger.DebugContext(ctx, "content item metadata saved", "content_id", contentID)
	return nil
}

// validateContentID rejects ids Postgres would refuse as a uuid (SQLSTATE 22P02).
func validateContentID(contentID string) error {
	if contentID == "" {
		return domain.ErrInvalidContentID
	}
	if _, err := uuid.Parse(contentID); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidContentID, contentID)
	}
	return nil
}
