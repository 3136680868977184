package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"discussion-fetcher/domain"
	logger "discussion-fetcher/utils/logger"
)

const (
	selectContentItemQuery         = `SELECT id::text, platform, metadata FROM content_items WHERE id = $1`
	updateContentItemMetadataQuery = `UPDATE content_items SET metadata = $2, updated_at = NOW() WHERE id = $1`
)

// GetContentItem loads a content item. A missing row yields (nil, nil).
func GetContentItem(ctx context.Context, db PgxIface, contentID string) (*domain.ContentItem, error) {
	var (
		item     domain.ContentItem
		metadata []byte
	)

	err := db.QueryRow(ctx, selectContentItemQuery, contentID).Scan(&item.ID, &item.Platform, &metadata)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Logger.ErrorContext(ctx, "Failed to load content item", "error", err, "content_id", contentID)
		return nil, fmt.Errorf("select content item: %w", err)
	}

	item.Metadata = map[string]any{}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &item.Metadata); err != nil {
			return nil, fmt.Errorf("decode content item metadata: %w", err)
		}
		if item.Metadata == nil {
			item.Metadata = map[string]any{}
		}
	}

	return &item, nil
}

// UpdateContentItemMetadata replaces the metadata document of a content item.
func UpdateContentItemMetadata(ctx context.Context, db PgxIface, contentID string, metadata map[string]any) error {
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode content item metadata: %w", err)
	}

	tag, err := db.Exec(ctx, updateContentItemMetadataQuery, contentID, encoded)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to update content item metadata", "error", err, "content_id", contentID)
		return fmt.Errorf("update content item metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update content item metadata %s: %w", contentID, domain.ErrContentNotFound)
	}

	return nil
}
