package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver/reddit_api"
	"discussion-fetcher/test/mocks"
	apperrors "discussion-fetcher/utils/errors"
)

func redditContentItem(discussionURL string) *domain.ContentItem {
	tag := "reddit"
	return &domain.ContentItem{
		ID:       "c-2",
		Platform: &tag,
		Metadata: map[string]any{domain.MetadataDiscussionURL: discussionURL},
	}
}

func newTestRedditFetcher(client RedditSubmissionClient, clientErr error) *redditFetcher {
	return &redditFetcher{
		client: func() (RedditSubmissionClient, error) {
			if clientErr != nil {
				return nil, clientErr
			}
			return client, nil
		},
		compactBudget: 400,
		logger:        testLogger(),
	}
}

func redditForest() *reddit_api.Submission {
	return &reddit_api.Submission{
		ID:          "abc",
		Name:        "t3_abc",
		NumComments: 12,
		Comments: []*reddit_api.Comment{
			{
				ID: "c1", Author: "alice", Body: "Read [the RFC](https://www.rfc-editor.org/rfc/rfc9110) first",
				BodyHTML:   `<div class="md"><p>Read <a href="https://www.rfc-editor.org/rfc/rfc9110">the RFC</a> first</p></div>`,
				CreatedUTC: 1700000000.5,
				Permalink:  "/r/go/comments/abc/t/c1/",
				Replies: []*reddit_api.Comment{
					{ID: "c2", Author: "bob", Body: "agreed"},
					{IsMore: true, MoreChildren: []string{"c9"}},
				},
			},
			{ID: "c3", Author: "carol", Body: ""},
			{ID: "c4", Author: "dave", Body: "last"},
			{IsMore: true, MoreChildren: []string{"c7", "c8"}},
		},
	}
}

func TestRedditFetcher_Walk(t *testing.T) {
	tests := map[string]struct {
		cap     int
		wantIDs []string
		wantCap bool
	}{
		"walks depth first skipping placeholders and empty bodies": {
			cap:     10,
			wantIDs: []string{"c1", "c2", "c4"},
		},
		"cap stops the walk": {
			cap:     2,
			wantIDs: []string{"c1", "c2"},
			wantCap: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockRedditSubmissionClient(ctrl)
			client.EXPECT().GetSubmission(gomock.Any(), "abc").Return(redditForest(), nil)

			f := newTestRedditFetcher(client, nil)
			out, err := f.Fetch(context.Background(), redditContentItem("https://old.reddit.com/r/go/comments/abc/t/"), tc.cap)
			require.NoError(t, err)

			ids := []string{}
			for _, c := range out.Payload.Comments {
				ids = append(ids, c.CommentID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantCap, out.Payload.Stats.CapReached)
			assert.Equal(t, domain.StatusCompleted, out.Status)
			require.NotNil(t, out.Payload.Stats.DeclaredCommentCount)
			assert.Equal(t, 12, *out.Payload.Stats.DeclaredCommentCount)
			require.NotNil(t, out.Payload.SourceURL)
			assert.Equal(t, "https://www.reddit.com/r/go/comments/abc/t/", *out.Payload.SourceURL)
		})
	}
}

func TestRedditFetcher_CommentShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRedditSubmissionClient(ctrl)
	client.EXPECT().GetSubmission(gomock.Any(), "abc").Return(redditForest(), nil)

	out, err := newTestRedditFetcher(client, nil).Fetch(context.Background(), redditContentItem("https://www.reddit.com/r/go/comments/abc/t/"), 10)
	require.NoError(t, err)

	first, reply, sibling := out.Payload.Comments[0], out.Payload.Comments[1], out.Payload.Comments[2]
	assert.Nil(t, first.ParentID)
	assert.Equal(t, "https://www.reddit.com/r/go/comments/abc/t/c1/", first.SourceURL)
	require.NotNil(t, first.CreatedAt)
	assert.Equal(t, int64(1700000000), first.CreatedAt.Unix())

	require.NotNil(t, reply.ParentID)
	assert.Equal(t, "c1", *reply.ParentID)
	assert.Equal(t, 1, reply.Depth)
	assert.Nil(t, sibling.ParentID)
	assert.Equal(t, 0, sibling.Depth)

	require.Len(t, out.Payload.Links, 1)
	assert.Equal(t, "https://www.rfc-editor.org/rfc/rfc9110", out.Payload.Links[0].URL)
	assert.Equal(t, "the RFC", out.Payload.Links[0].Title)
	assert.Equal(t, "c1", out.Payload.Links[0].CommentID)
}

func TestRedditFetcher_Failures(t *testing.T) {
	tests := map[string]struct {
		clientErr     error
		submissionErr error
		wantRetryable bool
	}{
		"forbidden is not retryable": {
			submissionErr: &reddit_api.APIError{StatusCode: http.StatusForbidden},
		},
		"rate limit is retryable": {
			submissionErr: &reddit_api.APIError{StatusCode: http.StatusTooManyRequests},
			wantRetryable: true,
		},
		"not found is not retryable": {
			submissionErr: &reddit_api.APIError{StatusCode: http.StatusNotFound},
		},
		"server error is retryable": {
			submissionErr: &reddit_api.APIError{StatusCode: http.StatusBadGateway},
			wantRetryable: true,
		},
		"other 4xx is not retryable": {
			submissionErr: &reddit_api.APIError{StatusCode: http.StatusConflict},
		},
		"missing submission is not retryable": {
			submissionErr: fmt.Errorf("submission abc: %w", domain.ErrSubmissionNotFound),
		},
		"oauth error code is not retryable": {
			submissionErr: &oauth2.RetrieveError{ErrorCode: "invalid_grant", Response: &http.Response{StatusCode: http.StatusBadRequest}},
		},
		"token endpoint outage is retryable": {
			submissionErr: &oauth2.RetrieveError{Response: &http.Response{StatusCode: http.StatusServiceUnavailable}},
			wantRetryable: true,
		},
		"network security block is not retryable": {
			submissionErr: errors.New("You've been blocked by network security."),
		},
		"unknown errors are retryable": {
			submissionErr: errors.New("unexpected EOF"),
			wantRetryable: true,
		},
		"client not configured is not retryable": {
			clientErr: domain.ErrRedditClientNotConfigured,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockRedditSubmissionClient(ctrl)
			if tc.clientErr == nil {
				client.EXPECT().GetSubmission(gomock.Any(), "abc").Return(nil, tc.submissionErr)
			}

			_, err := newTestRedditFetcher(client, tc.clientErr).Fetch(context.Background(), redditContentItem("https://www.reddit.com/comments/abc"), 10)
			require.Error(t, err)

			var opErr *apperrors.OperationError
			require.True(t, errors.As(err, &opErr))
			assert.Equal(t, tc.wantRetryable, opErr.Retryable)
		})
	}
}

func TestRedditFetcher_UnresolvableURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRedditSubmissionClient(ctrl)

	out, err := newTestRedditFetcher(client, nil).Fetch(context.Background(), redditContentItem("https://www.reddit.com/r/golang/"), 10)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartial, out.Status)
	assert.Empty(t, out.Payload.Comments)
}
