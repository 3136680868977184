package repository

import (
	"context"
	"fmt"
	"log/slog"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver"
	"discussion-fetcher/retry"
)

type discussionRepository struct {
	db      driver.PgxIface
	retrier *retry.Retrier
	logger  *slog.Logger
}

// NewDiscussionRepository wires the upsert through retrier, which should only retry
// transient database errors. A nil retrier makes a single attempt.
func NewDiscussionRepository(db driver.PgxIface, retrier *retry.Retrier, logger *slog.Logger) DiscussionRepository {
	return &discussionRepository{db: db, retrier: retrier, logger: logger}
}

func (r *discussionRepository) Upsert(ctx context.Context, record *domain.DiscussionRecord) error {
	if record == nil {
		return fmt.Errorf("discussion record cannot be nil")
	}
	if record.ContentID == "" {
		return domain.ErrInvalidContentID
	}
	if r.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	write := func(ctx context.Context) error {
		return driver.UpsertDiscussion(ctx, r.db, record)
	}

	var err error
	if r.retrier != nil {
		err = r.retrier.Do(ctx, write)
	} else {
		err = write(ctx)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to upsert discussion", "error", err, "content_id", record.ContentID, "status", record.Status)
		return fmt.Errorf("failed to upsert discussion: %w", err)
	}

	return nil
}

func (r *discussionRepository) FindByContentID(ctx context.Context, contentID string) (*domain.DiscussionRecord, error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}
	if r.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	rec, err := driver.GetDiscussion(ctx, r.db, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load discussion: %w", err)
	}
	return rec, nil
}
