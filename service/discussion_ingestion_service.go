// ABOUTME: Resolves the platform of a content item, runs its fetcher and stores the result
// ABOUTME: The only place where fetch failures are classified and persisted
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"discussion-fetcher/config"
	"discussion-fetcher/domain"
	"discussion-fetcher/metrics"
	"discussion-fetcher/repository"
	apperrors "discussion-fetcher/utils/errors"
	"discussion-fetcher/utils/url_utils"
)

// Fetchers holds one fetcher per platform plus the fallback.
type Fetchers struct {
	Techmeme    DiscussionFetcher
	HackerNews  DiscussionFetcher
	Reddit      DiscussionFetcher
	Unsupported DiscussionFetcher
}

type discussionIngestionService struct {
	contentRepo    repository.ContentItemRepository
	discussionRepo repository.DiscussionRepository
	fetchers       Fetchers
	denormalizer   MetadataDenormalizer
	fetchCfg       config.FetchConfig
	logger         *slog.Logger
	tracer         trace.Tracer
	now            func() time.Time
}

func NewDiscussionIngestionService(
	contentRepo repository.ContentItemRepository,
	discussionRepo repository.DiscussionRepository,
	fetchers Fetchers,
	denormalizer MetadataDenormalizer,
	fetchCfg config.FetchConfig,
	logger *slog.Logger,
) DiscussionIngestionService {
	if fetchers.Unsupported == nil {
		fetchers.Unsupported = NewUnsupportedFetcher()
	}
	return &discussionIngestionService{
		contentRepo:    contentRepo,
		discussionRepo: discussionRepo,
		fetchers:       fetchers,
		denormalizer:   denormalizer,
		fetchCfg:       fetchCfg,
		logger:         logger,
		tracer:         otel.Tracer("discussion-fetcher/service"),
		now:            time.Now,
	}
}

// FetchAndStoreDiscussion runs one fetch for contentID and replaces its stored discussion.
// A non-nil error means the database could not be read or written; the result is then
// a retryable failure.
func (s *discussionIngestionService) FetchAndStoreDiscussion(ctx context.Context, contentID string, commentCap int) (*domain.FetchResult, error) {
	ctx, span := s.tracer.Start(ctx, "discussion.fetch_and_store",
		trace.WithAttributes(attribute.String("content_id", contentID)))
	defer span.End()

	commentCap = s.effectiveCap(commentCap)
	log := s.logger.With("content_id", contentID, "comment_cap", commentCap)

	item, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) || errors.Is(err, domain.ErrInvalidContentID) {
			log.WarnContext(ctx, "content item not found, nothing to store")
			metrics.RecordFetch(string(domain.PlatformUnsupported), string(domain.StatusFailed), false, 0, 0)
			return &domain.FetchResult{
				Success:      false,
				Status:       domain.StatusFailed,
				ErrorMessage: fmt.Sprintf("content item %s not found", contentID),
				Retryable:    false,
			}, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "content item load failed")
		log.ErrorContext(ctx, "failed to load content item", "error", err)
		return infrastructureFailure("failed to load content item"), err
	}

	platform := domain.ClassifyPlatform(item.PlatformTag(), item.DiscussionURL())
	span.SetAttributes(attribute.String("platform", string(platform)))
	log = log.With("platform", platform)

	started := s.now()
	outcome, fetchErr := s.fetcherFor(platform).Fetch(ctx, item, commentCap)
	if fetchErr == nil && (outcome == nil || outcome.Payload == nil) {
		fetchErr = fmt.Errorf("%s fetcher returned no payload", platform)
	}
	elapsed := s.now().Sub(started)

	record := &domain.DiscussionRecord{
		ContentID: item.ID,
		Platform:  platformColumn(item, platform),
	}

	retryable := false
	if fetchErr != nil {
		var message string
		retryable, message = classifyFetchError(fetchErr)

		span.RecordError(fetchErr)
		log.ErrorContext(ctx, "discussion fetch failed",
			"error", fetchErr,
			"retryable", retryable,
			"duration_ms", elapsed.Milliseconds())

		sourceURL, _ := url_utils.NormalizeURL(item.DiscussionURL())
		record.Status = domain.StatusFailed
		record.Data = domain.NewPayload(domain.ModeNone, sourceURL, commentCap)
		record.ErrorMessage = &message
	} else {
		fetchedAt := s.now().UTC()
		record.Status = outcome.Status
		record.Data = outcome.Payload
		record.FetchedAt = &fetchedAt
		if outcome.Status != domain.StatusCompleted {
			message := outcome.ErrorMessage
			if message == "" {
				message = "discussion fetched partially"
			}
			record.ErrorMessage = &message
		}
		log.InfoContext(ctx, "discussion fetched",
			"status", outcome.Status,
			"mode", outcome.Payload.Mode,
			"fetched_count", outcome.Payload.Stats.FetchedCount,
			"cap_reached", outcome.Payload.Stats.CapReached,
			"duration_ms", elapsed.Milliseconds())
	}

	if err := s.discussionRepo.Upsert(ctx, record); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "discussion upsert failed")
		log.ErrorContext(ctx, "failed to store discussion", "error", err, "status", record.Status)
		metrics.RecordFetch(string(platform), string(domain.StatusFailed), true, elapsed, 0)
		return infrastructureFailure("failed to store discussion"), err
	}

	s.denormalize(ctx, log, item, record.Data)

	metrics.RecordFetch(string(platform), string(record.Status), retryable, elapsed, record.Data.Stats.FetchedCount)
	span.SetAttributes(attribute.String("status", string(record.Status)))
	if record.Status == domain.StatusFailed {
		span.SetStatus(codes.Error, "fetch failed")
	}

	result := &domain.FetchResult{
		Success:   record.Status != domain.StatusFailed,
		Status:    record.Status,
		Retryable: retryable,
	}
	if record.ErrorMessage != nil {
		result.ErrorMessage = *record.ErrorMessage
	}
	return result, nil
}

func (s *discussionIngestionService) fetcherFor(p domain.Platform) DiscussionFetcher {
	var f DiscussionFetcher
	switch p {
	case domain.PlatformTechmeme:
		f = s.fetchers.Techmeme
	case domain.PlatformHackerNews:
		f = s.fetchers.HackerNews
	case domain.PlatformReddit:
		f = s.fetchers.Reddit
	}
	if f == nil {
		return s.fetchers.Unsupported
	}
	return f
}

// denormalize never changes the outcome of an invocation.
func (s *discussionIngestionService) denormalize(ctx context.Context, log *slog.Logger, item *domain.ContentItem, payload *domain.DiscussionPayload) {
	if s.denormalizer == nil {
		return
	}
	written, err := s.denormalizer.Apply(ctx, item, payload)
	if err != nil {
		log.WarnContext(ctx, "metadata denormalization failed", "error", err)
		return
	}
	metrics.RecordMetadataWrite(written)
}

func (s *discussionIngestionService) effectiveCap(requested int) int {
	if requested <= 0 {
		requested = s.fetchCfg.DefaultCommentCap
	}
	if s.fetchCfg.MaxCommentCap > 0 && requested > s.fetchCfg.MaxCommentCap {
		requested = s.fetchCfg.MaxCommentCap
	}
	if requested <= 0 {
		requested = 1
	}
	return requested
}

// classifyFetchError maps a fetcher error to (retryable, message). Timeouts are checked
// first since a classified error may wrap one.
func classifyFetchError(err error) (bool, string) {
	if apperrors.IsTimeout(err) {
		return true, fmt.Sprintf("request timed out: %v", err)
	}
	var opErr *apperrors.OperationError
	if errors.As(err, &opErr) {
		return opErr.Retryable, opErr.Error()
	}
	return true, fmt.Sprintf("unexpected error: %v", err)
}

// platformColumn stores the resolved platform, or the declared tag when none matched.
func platformColumn(item *domain.ContentItem, p domain.Platform) *string {
	if p != domain.PlatformUnsupported {
		v := string(p)
		return &v
	}
	if tag := strings.ToLower(item.PlatformTag()); tag != "" {
		return &tag
	}
	return nil
}

func infrastructureFailure(message string) *domain.FetchResult {
	return &domain.FetchResult{
		Success:      false,
		Status:       domain.StatusFailed,
		ErrorMessage: message,
		Retryable:    true,
	}
}
