package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver/hackernews_api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// fakeHNClient serves items from a map; ids listed in errs fail.
type fakeHNClient struct {
	mu    sync.Mutex
	items map[int64]*hackernews_api.Item
	errs  map[int64]error
	calls []int64
}

func (f *fakeHNClient) GetItem(_ context.Context, id int64) (*hackernews_api.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, id)
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	return f.items[id], nil
}

func hnComment(id int64, by, text string, kids ...int64) *hackernews_api.Item {
	return &hackernews_api.Item{ID: id, Type: "comment", By: by, Text: text, Time: 1700000000, Kids: kids}
}

func hnStory(id int64, descendants int, kids ...int64) *hackernews_api.Item {
	return &hackernews_api.Item{ID: id, Type: "story", Descendants: &descendants, Kids: kids}
}

func hnContentItem(discussionURL string) *domain.ContentItem {
	tag := "hackernews"
	return &domain.ContentItem{
		ID:       "c-1",
		Platform: &tag,
		Metadata: map[string]any{domain.MetadataDiscussionURL: discussionURL},
	}
}

func TestHackerNewsFetcher_Traversal(t *testing.T) {
	tests := map[string]struct {
		items       map[int64]*hackernews_api.Item
		cap         int
		concurrency int
		wantIDs     []string
		wantSeen    int
		wantCap     bool
		wantStatus  domain.Status
	}{
		"deleted child is seen but skipped": {
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 3, 10, 11, 12),
				10: hnComment(10, "a", "first"),
				11: {ID: 11, Type: "comment", Deleted: true},
				12: hnComment(12, "c", "third"),
			},
			cap:        10,
			wantIDs:    []string{"10", "12"},
			wantSeen:   3,
			wantStatus: domain.StatusCompleted,
		},
		"cap stops traversal": {
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 5, 10, 11, 12, 13, 14),
				10: hnComment(10, "a", "one"),
				11: hnComment(11, "b", "two"),
				12: hnComment(12, "c", "three"),
				13: hnComment(13, "d", "four"),
				14: hnComment(14, "e", "five"),
			},
			cap:        2,
			wantIDs:    []string{"10", "11"},
			wantSeen:   2,
			wantCap:    true,
			wantStatus: domain.StatusCompleted,
		},
		"cap stops traversal with prefetch": {
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 5, 10, 11, 12, 13, 14),
				10: hnComment(10, "a", "one"),
				11: hnComment(11, "b", "two"),
				12: hnComment(12, "c", "three"),
				13: hnComment(13, "d", "four"),
				14: hnComment(14, "e", "five"),
			},
			cap:         2,
			concurrency: 4,
			wantIDs:     []string{"10", "11"},
			wantSeen:    2,
			wantCap:     true,
			wantStatus:  domain.StatusCompleted,
		},
		"breadth first order across depths": {
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 4, 10, 11),
				10: hnComment(10, "a", "top a", 20),
				11: hnComment(11, "b", "top b", 21),
				20: hnComment(20, "c", "reply a"),
				21: hnComment(21, "d", "reply b"),
			},
			cap:         10,
			concurrency: 3,
			wantIDs:     []string{"10", "11", "20", "21"},
			wantSeen:    4,
			wantStatus:  domain.StatusCompleted,
		},
		"dead and empty comments are skipped": {
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 2, 10, 11),
				10: {ID: 10, Type: "comment", Dead: true, Text: "spam"},
				11: hnComment(11, "b", "<p></p>"),
			},
			cap:        10,
			wantIDs:    []string{},
			wantSeen:   2,
			wantStatus: domain.StatusPartial,
		},
		"exactly cap comments without more is not cap reached": {
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 2, 10, 11),
				10: hnComment(10, "a", "one"),
				11: hnComment(11, "b", "two"),
			},
			cap:        2,
			wantIDs:    []string{"10", "11"},
			wantSeen:   2,
			wantStatus: domain.StatusCompleted,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			client := &fakeHNClient{items: tc.items}
			f := NewHackerNewsFetcher(client, tc.concurrency, 400, testLogger())

			out, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/item?id=1"), tc.cap)
			require.NoError(t, err)
			require.NotNil(t, out)

			ids := []string{}
			for _, c := range out.Payload.Comments {
				ids = append(ids, c.CommentID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantStatus, out.Status)
			assert.Equal(t, tc.wantCap, out.Payload.Stats.CapReached)
			assert.LessOrEqual(t, out.Payload.Stats.FetchedCount, tc.cap)
			require.NotNil(t, out.Payload.Stats.TotalSeen)
			assert.Equal(t, tc.wantSeen, *out.Payload.Stats.TotalSeen)
			assert.Equal(t, domain.ModeComments, out.Payload.Mode)
			assert.Len(t, out.Payload.CompactComments, len(out.Payload.Comments))
		})
	}
}

func TestHackerNewsFetcher_CommentShape(t *testing.T) {
	client := &fakeHNClient{items: map[int64]*hackernews_api.Item{
		1:  hnStory(1, 2, 10),
		10: hnComment(10, "alice", `See <a href="https:&#x2F;&#x2F;go.dev&#x2F;blog&#x2F;" rel="nofollow">the Go blog</a> at https:&#x2F;&#x2F;go.dev&#x2F;blog&#x2F;`, 20),
		20: hnComment(20, "bob", `Also https://go.dev/blog and <a href="https://example.com/x">https://example.com/x</a>`),
	}}
	f := NewHackerNewsFetcher(client, 1, 400, testLogger())

	out, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/item?id=1"), 10)
	require.NoError(t, err)
	require.Len(t, out.Payload.Comments, 2)

	top, reply := out.Payload.Comments[0], out.Payload.Comments[1]
	assert.Nil(t, top.ParentID)
	assert.Equal(t, 0, top.Depth)
	assert.Equal(t, "See the Go blog at https://go.dev/blog/", top.Text)
	require.NotNil(t, top.CreatedAt)
	assert.Equal(t, int64(1700000000), top.CreatedAt.Unix())
	assert.Equal(t, "https://news.ycombinator.com/item?id=10", top.SourceURL)

	require.NotNil(t, reply.ParentID)
	assert.Equal(t, "10", *reply.ParentID)
	assert.Equal(t, 1, reply.Depth)

	require.NotNil(t, out.Payload.Stats.DeclaredCommentCount)
	assert.Equal(t, 2, *out.Payload.Stats.DeclaredCommentCount)

	require.Len(t, out.Payload.Links, 2)
	assert.Equal(t, "https://go.dev/blog", out.Payload.Links[0].URL)
	assert.Equal(t, "the Go blog", out.Payload.Links[0].Title)
	assert.Equal(t, "10", out.Payload.Links[0].CommentID)
	assert.Equal(t, "https://example.com/x", out.Payload.Links[1].URL)
	assert.Empty(t, out.Payload.Links[1].Title, "anchor text equal to its URL is not a title")
}

func TestHackerNewsFetcher_Failures(t *testing.T) {
	t.Run("unresolvable id is partial", func(t *testing.T) {
		client := &fakeHNClient{}
		f := NewHackerNewsFetcher(client, 1, 400, testLogger())

		out, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/news"), 10)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPartial, out.Status)
		assert.NotEmpty(t, out.ErrorMessage)
		assert.Empty(t, out.Payload.Comments)
		assert.Empty(t, client.calls)
	})

	t.Run("missing root is partial", func(t *testing.T) {
		f := NewHackerNewsFetcher(&fakeHNClient{}, 1, 400, testLogger())

		out, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/item?id=99"), 10)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPartial, out.Status)
	})

	t.Run("root status error is partial", func(t *testing.T) {
		client := &fakeHNClient{errs: map[int64]error{1: &hackernews_api.APIError{StatusCode: 500}}}
		f := NewHackerNewsFetcher(client, 1, 400, testLogger())

		out, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/item?id=1"), 10)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPartial, out.Status)
	})

	t.Run("root timeout propagates", func(t *testing.T) {
		client := &fakeHNClient{errs: map[int64]error{1: context.DeadlineExceeded}}
		f := NewHackerNewsFetcher(client, 1, 400, testLogger())

		_, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/item?id=1"), 10)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("child errors are counted and skipped", func(t *testing.T) {
		client := &fakeHNClient{
			items: map[int64]*hackernews_api.Item{
				1:  hnStory(1, 2, 10, 11),
				11: hnComment(11, "b", "ok"),
			},
			errs: map[int64]error{10: errors.New("connection reset")},
		}
		f := NewHackerNewsFetcher(client, 1, 400, testLogger())

		out, err := f.Fetch(context.Background(), hnContentItem("https://news.ycombinator.com/item?id=1"), 10)
		require.NoError(t, err)
		require.Len(t, out.Payload.Comments, 1)
		assert.Equal(t, 2, *out.Payload.Stats.TotalSeen)
	})
}

func TestHackerNewsItemID(t *testing.T) {
	tests := map[string]struct {
		raw    string
		want   int64
		wantOK bool
	}{
		"query parameter":       {raw: "https://news.ycombinator.com/item?id=4242", want: 4242, wantOK: true},
		"trailing path segment": {raw: "https://hn.example.com/items/77/", want: 77, wantOK: true},
		"missing scheme":        {raw: "news.ycombinator.com/item?id=5", want: 5, wantOK: true},
		"non numeric":           {raw: "https://news.ycombinator.com/item?id=abc"},
		"negative":              {raw: "https://news.ycombinator.com/item?id=-3"},
		"empty":                 {raw: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := hackerNewsItemID(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
