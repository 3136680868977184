package main

import (
	"time"

	"discussion-fetcher/domain"
)

type storedDiscussion struct {
	ContentID    string                    `json:"content_id"`
	Platform     *string                   `json:"platform"`
	Status       string                    `json:"status"`
	ErrorMessage *string                   `json:"error_message,omitempty"`
	FetchedAt    *time.Time                `json:"fetched_at"`
	Discussion   *domain.DiscussionPayload `json:"discussion_data"`
}
