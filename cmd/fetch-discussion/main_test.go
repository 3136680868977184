package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"discussion-fetcher/bootstrap"
	"discussion-fetcher/config"
	"discussion-fetcher/domain"
	"discussion-fetcher/test/mocks"
)

const contentID = "6f1c1d2e-5b59-4d1e-9a57-3c0de8a0b001"

func execute(t *testing.T, core *bootstrap.Core, args ...string) (string, error) {
	t.Helper()
	builder := func(context.Context, *config.Config, *slog.Logger) (*bootstrap.Core, func(), error) {
		return core, func() {}, nil
	}
	root := newRootCmd(builder)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := map[string]struct {
		args     []string
		result   *domain.FetchResult
		err      error
		wantCap  int
		wantExit int
		wantErr  bool
		wantOut  string
	}{
		"completed": {
			args:    []string{"run", contentID, "--cap", "30"},
			result:  &domain.FetchResult{Success: true, Status: domain.StatusCompleted},
			wantCap: 30,
			wantOut: `"status": "completed"`,
		},
		"failure exits 1": {
			args:     []string{"run", contentID},
			result:   &domain.FetchResult{Status: domain.StatusFailed, Retryable: true, ErrorMessage: "request timed out"},
			wantExit: 1,
			wantOut:  `"retryable": true`,
		},
		"storage error": {
			args:    []string{"run", contentID},
			result:  &domain.FetchResult{Status: domain.StatusFailed, Retryable: true},
			err:     errors.New("connection refused"),
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ingestion := mocks.NewMockDiscussionIngestionService(ctrl)
			ingestion.EXPECT().FetchAndStoreDiscussion(gomock.Any(), contentID, tc.wantCap).Return(tc.result, tc.err)

			out, err := execute(t, &bootstrap.Core{Ingestion: ingestion}, tc.args...)
			assert.Contains(t, out, tc.wantOut)

			var exitErr *exitError
			switch {
			case tc.wantExit != 0:
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantExit, exitErr.code)
			case tc.wantErr:
				require.Error(t, err)
				assert.False(t, errors.As(err, &exitErr))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunCommand_InvalidContentID(t *testing.T) {
	_, err := execute(t, &bootstrap.Core{}, "run", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a UUID")
}

func TestShowCommand(t *testing.T) {
	platform := "reddit"
	payload := domain.NewPayload(domain.ModeComments, "https://www.reddit.com/comments/abc/", 10)

	t.Run("stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDiscussionRepository(ctrl)
		repo.EXPECT().FindByContentID(gomock.Any(), contentID).Return(&domain.DiscussionRecord{
			ContentID: contentID,
			Platform:  &platform,
			Status:    domain.StatusPartial,
			Data:      payload,
		}, nil)

		out, err := execute(t, &bootstrap.Core{DiscussionRepo: repo}, "show", contentID)
		require.NoError(t, err)
		assert.Contains(t, out, `"platform": "reddit"`)
		assert.Contains(t, out, `"mode": "comments"`)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDiscussionRepository(ctrl)
		repo.EXPECT().FindByContentID(gomock.Any(), contentID).Return(nil, nil)

		_, err := execute(t, &bootstrap.Core{DiscussionRepo: repo}, "show", contentID)
		var exitErr *exitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.code)
	})
}
