// ABOUTME: Breadth-first walk of a Hacker News comment tree bounded by a comment cap
// ABOUTME: Queue heads may be prefetched in parallel; processing order never changes
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver/hackernews_api"
	apperrors "discussion-fetcher/utils/errors"
	"discussion-fetcher/utils/html_parser"
)

const hackerNewsItemPage = "https://news.ycombinator.com/item?id="

type hackerNewsFetcher struct {
	client        HackerNewsItemClient
	concurrency   int
	compactBudget int
	logger        *slog.Logger
}

// NewHackerNewsFetcher returns the comment-tree fetcher. concurrency below 2 fetches one item at a time.
func NewHackerNewsFetcher(client HackerNewsItemClient, concurrency, compactBudget int, logger *slog.Logger) DiscussionFetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &hackerNewsFetcher{
		client:        client,
		concurrency:   concurrency,
		compactBudget: compactBudget,
		logger:        logger,
	}
}

type hnQueued struct {
	id       int64
	depth    int
	parentID *string
}

type hnFetched struct {
	item *hackernews_api.Item
	err  error
}

func (f *hackerNewsFetcher) Fetch(ctx context.Context, item *domain.ContentItem, commentCap int) (*domain.FetchOutcome, error) {
	rootID, ok := hackerNewsItemID(item.DiscussionURL())
	if !ok {
		payload := domain.NewPayload(domain.ModeComments, "", commentCap)
		return partialOutcome(payload, "could not resolve a Hacker News item id from the discussion URL"), nil
	}

	sourceURL := hackerNewsItemPage + strconv.FormatInt(rootID, 10)
	payload := domain.NewPayload(domain.ModeComments, sourceURL, commentCap)

	root, err := f.client.GetItem(ctx, rootID)
	if err != nil {
		if apperrors.IsTimeout(err) {
			return nil, fmt.Errorf("load hackernews item %d: %w", rootID, err)
		}
		f.logger.WarnContext(ctx, "hackernews root item could not be loaded", "item_id", rootID, "error", err)
		return partialOutcome(payload, fmt.Sprintf("Hacker News item %d could not be loaded: %v", rootID, err)), nil
	}
	if root == nil {
		return partialOutcome(payload, fmt.Sprintf("Hacker News item %d was not found", rootID)), nil
	}
	if root.Descendants != nil {
		declared := *root.Descendants
		payload.Stats.DeclaredCommentCount = &declared
	}

	queue := make([]hnQueued, 0, len(root.Kids))
	for _, kid := range root.Kids {
		queue = append(queue, hnQueued{id: kid})
	}

	var (
		comments  []domain.Comment
		titles    = anchorTitles{}
		totalSeen int
	)

	for len(queue) > 0 {
		if len(comments) >= commentCap {
			payload.Stats.CapReached = true
			break
		}

		window := min(commentCap-len(comments), len(queue), f.concurrency)
		batch := queue[:window]
		queue = queue[window:]

		results := f.fetchBatch(ctx, batch)
		for i, q := range batch {
			totalSeen++

			res := results[i]
			if res.err != nil {
				if ctx.Err() != nil {
					return nil, fmt.Errorf("load hackernews item %d: %w", q.id, ctx.Err())
				}
				f.logger.DebugContext(ctx, "skipping hackernews item", "item_id", q.id, "error", res.err)
				continue
			}

			it := res.item
			if it == nil || it.Type != "comment" || it.Deleted || it.Dead {
				continue
			}

			text := html_parser.Clean(it.Text)
			if text == "" {
				continue
			}
			titles.merge(html_parser.ExtractAnchorTitles(it.Text, sourceURL))

			id := strconv.FormatInt(it.ID, 10)
			comments = append(comments, domain.Comment{
				CommentID:   id,
				ParentID:    q.parentID,
				Author:      it.By,
				Text:        text,
				CompactText: html_parser.Compact(text, f.compactBudget),
				Depth:       q.depth,
				CreatedAt:   epochToTime(it.Time),
				SourceURL:   hackerNewsItemPage + id,
			})

			for _, kid := range it.Kids {
				queue = append(queue, hnQueued{id: kid, depth: q.depth + 1, parentID: &id})
			}
		}
	}

	payload.Stats.TotalSeen = &totalSeen
	return finishCommentPayload(payload, comments, titles, "no comments were found for this Hacker News item"), nil
}

// fetchBatch loads every queued item, in parallel when the window allows. Results are
// index-aligned with batch.
func (f *hackerNewsFetcher) fetchBatch(ctx context.Context, batch []hnQueued) []hnFetched {
	results := make([]hnFetched, len(batch))
	if len(batch) == 1 {
		results[0].item, results[0].err = f.client.GetItem(ctx, batch[0].id)
		return results
	}

	var g errgroup.Group
	for i, q := range batch {
		g.Go(func() error {
			results[i].item, results[i].err = f.client.GetItem(ctx, q.id)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// hackerNewsItemID reads the id query parameter, else a trailing numeric path segment.
func hackerNewsItemID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return 0, false
	}

	if id, ok := positiveInt(u.Query().Get("id")); ok {
		return id, true
	}

	segments := strings.Split(strings.TrimRight(u.Path, "/"), "/")
	return positiveInt(segments[len(segments)-1])
}

func positiveInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func epochToTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
