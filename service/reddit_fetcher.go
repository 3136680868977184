// ABOUTME: Depth-first walk of a Reddit comment forest bounded by a comment cap
// ABOUTME: Client failures are wrapped with a retryability verdict for the orchestrator
package service

import (
	"context"
	"html"
	"log/slog"
	"math"
	"strings"
	"time"

	"discussion-fetcher/domain"
	"discussion-fetcher/driver/reddit_api"
	apperrors "discussion-fetcher/utils/errors"
	"discussion-fetcher/utils/html_parser"
)

const redditWebBase = "https://www.reddit.com"

type redditFetcher struct {
	client        func() (RedditSubmissionClient, error)
	compactBudget int
	logger        *slog.Logger
}

// NewRedditFetcher resolves the authenticated client through provider on first use.
func NewRedditFetcher(provider *reddit_api.Provider, compactBudget int, logger *slog.Logger) DiscussionFetcher {
	return &redditFetcher{
		client: func() (RedditSubmissionClient, error) {
			c, err := provider.Client()
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		compactBudget: compactBudget,
		logger:        logger,
	}
}

func (f *redditFetcher) Fetch(ctx context.Context, item *domain.ContentItem, commentCap int) (*domain.FetchOutcome, error) {
	canonical, submissionID, ok := reddit_api.CanonicalSubmission(item.DiscussionURL())
	if !ok {
		payload := domain.NewPayload(domain.ModeComments, "", commentCap)
		return partialOutcome(payload, "could not resolve a Reddit submission id from the discussion URL"), nil
	}
	payload := domain.NewPayload(domain.ModeComments, canonical, commentCap)

	client, err := f.client()
	if err != nil {
		return nil, apperrors.NewOperationError("reddit client", err, false)
	}

	submission, err := client.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, classifyRedditError(err)
	}

	declared := submission.NumComments
	payload.Stats.DeclaredCommentCount = &declared

	w := &redditWalk{
		cap:       commentCap,
		budget:    f.compactBudget,
		sourceURL: canonical,
		titles:    anchorTitles{},
	}
	w.walk(submission.Comments, 0, nil)
	payload.Stats.CapReached = w.capReached

	f.logger.DebugContext(ctx, "reddit forest walked",
		"submission_id", submissionID,
		"emitted", len(w.comments),
		"declared", declared,
		"cap_reached", w.capReached)

	return finishCommentPayload(payload, w.comments, w.titles, "no comments were found for this Reddit submission"), nil
}

type redditWalk struct {
	cap        int
	budget     int
	sourceURL  string
	comments   []domain.Comment
	titles     anchorTitles
	capReached bool
}

// walk returns false once the cap stops the traversal.
func (w *redditWalk) walk(nodes []*reddit_api.Comment, depth int, parentID *string) bool {
	for _, n := range nodes {
		if n == nil || n.IsMore {
			continue
		}
		if len(w.comments) >= w.cap {
			w.capReached = true
			return false
		}

		if n.BodyHTML != "" {
			w.titles.merge(html_parser.ExtractAnchorTitles(unescapedHTML(n.BodyHTML), w.sourceURL))
		}

		text := html_parser.Clean(n.Body)
		if n.ID != "" && text != "" {
			w.comments = append(w.comments, domain.Comment{
				CommentID:   n.ID,
				ParentID:    parentID,
				Author:      n.Author,
				Text:        text,
				CompactText: html_parser.Compact(text, w.budget),
				Depth:       depth,
				CreatedAt:   floatEpochToTime(n.CreatedUTC),
				SourceURL:   w.commentURL(n),
			})
		}

		var childParent *string
		if n.ID != "" {
			id := n.ID
			childParent = &id
		}
		if !w.walk(n.Replies, depth+1, childParent) {
			return false
		}
	}
	return true
}

func (w *redditWalk) commentURL(n *reddit_api.Comment) string {
	if n.Permalink != "" {
		return redditWebBase + n.Permalink
	}
	return w.sourceURL
}

// body_html arrives entity-escaped unless raw_json was honoured.
func unescapedHTML(s string) string {
	if strings.HasPrefix(strings.TrimSpace(s), "&lt;") {
		return html.UnescapeString(s)
	}
	return s
}

func floatEpochToTime(sec float64) *time.Time {
	if sec <= 0 || math.IsNaN(sec) || math.IsInf(sec, 0) {
		return nil
	}
	whole, frac := math.Modf(sec)
	t := time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return &t
}
