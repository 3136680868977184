package handler

import (
	"time"

	"discussion-fetcher/domain"
)

type discussionResponse struct {
	ContentID    string                    `json:"content_id"`
	Platform     *string                   `json:"platform"`
	Status       string                    `json:"status"`
	Discussion   *domain.DiscussionPayload `json:"discussion_data"`
	ErrorMessage *string                   `json:"error_message,omitempty"`
	FetchedAt    *time.Time                `json:"fetched_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}
