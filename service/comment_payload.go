package service

import (
	"discussion-fetcher/domain"
	"discussion-fetcher/utils/url_utils"
)

// anchorTitles accumulates harvested titles across comments; the first title per URL wins.
type anchorTitles map[string]string

func (a anchorTitles) merge(titles map[string]string) {
	for u, title := range titles {
		if _, ok := a[u]; !ok {
			a[u] = title
		}
	}
}

// finishCommentPayload fills comments, compact comments and links, and decides
// the status of a comments-mode fetch.
func finishCommentPayload(payload *domain.DiscussionPayload, comments []domain.Comment, titles anchorTitles, emptyMessage string) *domain.FetchOutcome {
	payload.SetComments(comments)
	payload.Links = url_utils.BuildCommentLinks(comments, titles)

	if len(comments) > 0 {
		return &domain.FetchOutcome{Status: domain.StatusCompleted, Payload: payload}
	}
	return partialOutcome(payload, emptyMessage)
}

func partialOutcome(payload *domain.DiscussionPayload, message string) *domain.FetchOutcome {
	return &domain.FetchOutcome{
		Status:       domain.StatusPartial,
		ErrorMessage: message,
		Payload:      payload,
	}
}
