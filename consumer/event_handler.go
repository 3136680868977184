package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"discussion-fetcher/domain"
)

// EventTypeDiscussionFetchRequested asks for one content item's discussion to be fetched.
const EventTypeDiscussionFetchRequested = "DiscussionFetchRequested"

// ErrRetryLater keeps a message pending after a retryable fetch failure.
var ErrRetryLater = errors.New("discussion fetch failed with a retryable error")

// DiscussionFetchRequestedPayload is the payload of DiscussionFetchRequested.
type DiscussionFetchRequestedPayload struct {
	ContentID  string `json:"content_id"`
	CommentCap int    `json:"comment_cap"`
}

// DiscussionService is the part of the ingestion service the consumer needs.
type DiscussionService interface {
	FetchAndStoreDiscussion(ctx context.Context, contentID string, commentCap int) (*domain.FetchResult, error)
}

// DiscussionEventHandler turns stream events into discussion fetches.
type DiscussionEventHandler struct {
	service DiscussionService
	logger  *slog.Logger
}

func NewDiscussionEventHandler(service DiscussionService, logger *slog.Logger) *DiscussionEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscussionEventHandler{service: service, logger: logger}
}

// HandleEvent returns nil for anything that should be ACKed: handled events,
// non-retryable failures, malformed payloads and unknown event types.
func (h *DiscussionEventHandler) HandleEvent(ctx context.Context, event Event) error {
	log := h.logger.With(
		"event_id", event.EventID,
		"event_type", event.EventType,
		"message_id", event.MessageID,
	)

	if event.EventType != EventTypeDiscussionFetchRequested {
		log.InfoContext(ctx, "ignoring unknown event type")
		return nil
	}

	var payload DiscussionFetchRequestedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		log.ErrorContext(ctx, "dropping malformed DiscussionFetchRequested payload", "error", err)
		return nil
	}
	payload.ContentID = strings.TrimSpace(payload.ContentID)
	if payload.ContentID == "" {
		log.ErrorContext(ctx, "dropping DiscussionFetchRequested without content_id")
		return nil
	}

	log = log.With("content_id", payload.ContentID)
	result, err := h.service.FetchAndStoreDiscussion(ctx, payload.ContentID, payload.CommentCap)
	if err != nil {
		log.ErrorContext(ctx, "discussion fetch could not be stored", "error", err)
		return fmt.Errorf("fetch and store discussion %s: %w", payload.ContentID, err)
	}

	if !result.Success && result.Retryable {
		log.WarnContext(ctx, "discussion fetch failed, will retry",
			"error_message", result.ErrorMessage)
		return fmt.Errorf("%w: %s", ErrRetryLater, result.ErrorMessage)
	}

	log.InfoContext(ctx, "discussion fetch handled",
		"status", result.Status,
		"success", result.Success)
	return nil
}
