package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"discussion-fetcher/domain"
	apperrors "discussion-fetcher/utils/errors"
	logger "discussion-fetcher/utils/logger"
)

const (
	selectDiscussionIDQuery = `SELECT id::text FROM content_discussions WHERE content_id = $1`

	insertDiscussionQuery = `
		INSERT INTO content_discussions (content_id, platform, status, discussion_data, error_message, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	updateDiscussionQuery = `
		UPDATE content_discussions
		SET platform = $2, status = $3, discussion_data = $4, error_message = $5, fetched_at = $6, updated_at = NOW()
		WHERE content_id = $1`

	selectDiscussionQuery = `
		SELECT id::text, content_id::text, platform, status, discussion_data, error_message, fetched_at, created_at, updated_at
		FROM content_discussions
		WHERE content_id = $1`
)

// UpsertDiscussion writes rec as the single discussion row of its content item.
// An insert that loses a race against another writer is retried as an update.
func UpsertDiscussion(ctx context.Context, db PgxIface, rec *domain.DiscussionRecord) error {
	if rec == nil || rec.Data == nil {
		return errors.New("discussion record and payload are required")
	}

	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("encode discussion payload: %w", err)
	}
	args := []any{rec.ContentID, rec.Platform, string(rec.Status), data, rec.ErrorMessage, rec.FetchedAt}

	var existingID string
	err = db.QueryRow(ctx, selectDiscussionIDQuery, rec.ContentID).Scan(&existingID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = db.Exec(ctx, insertDiscussionQuery, args...)
		if err == nil {
			logger.Logger.InfoContext(ctx, "Discussion created", "content_id", rec.ContentID, "status", rec.Status)
			return nil
		}
		if !apperrors.IsUniqueViolation(err) {
			return fmt.Errorf("insert discussion: %w", err)
		}
		logger.Logger.InfoContext(ctx, "Discussion created concurrently, updating instead", "content_id", rec.ContentID)
	case err != nil:
		return fmt.Errorf("lookup discussion: %w", err)
	}

	tag, err := db.Exec(ctx, updateDiscussionQuery, args...)
	if err != nil {
		return fmt.Errorf("update discussion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update discussion for content %s: no row", rec.ContentID)
	}

	logger.Logger.InfoContext(ctx, "Discussion updated", "content_id", rec.ContentID, "status", rec.Status)
	return nil
}

// GetDiscussion loads the stored discussion of a content item. A missing row yields (nil, nil).
func GetDiscussion(ctx context.Context, db PgxIface, contentID string) (*domain.DiscussionRecord, error) {
	var (
		rec    domain.DiscussionRecord
		status string
		data   []byte
	)

	err := db.QueryRow(ctx, selectDiscussionQuery, contentID).Scan(
		&rec.ID, &rec.ContentID, &rec.Platform, &status, &data,
		&rec.ErrorMessage, &rec.FetchedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select discussion: %w", err)
	}

	rec.Status = domain.Status(status)
	rec.Data = &domain.DiscussionPayload{}
	if err := json.Unmarshal(data, rec.Data); err != nil {
		return nil, fmt.Errorf("decode discussion payload: %w", err)
	}

	return &rec, nil
}
