package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"discussion-fetcher/config"
	"discussion-fetcher/consumer"
	"discussion-fetcher/driver"
	"discussion-fetcher/driver/hackernews_api"
	"discussion-fetcher/driver/reddit_api"
	"discussion-fetcher/driver/techmeme_web"
	"discussion-fetcher/handler"
	"discussion-fetcher/middleware"
	"discussion-fetcher/repository"
	"discussion-fetcher/retry"
	"discussion-fetcher/service"
	apperrors "discussion-fetcher/utils/errors"
)

// Core is what a single fetch needs: storage and the ingestion service.
type Core struct {
	DBPool         *pgxpool.Pool
	ContentRepo    repository.ContentItemRepository
	DiscussionRepo repository.DiscussionRepository
	Ingestion      service.DiscussionIngestionService
}

// Dependencies holds all application dependencies.
type Dependencies struct {
	*Core
	Config            *config.Config
	DiscussionHandler *handler.DiscussionHandler
	HealthHandler     *handler.HealthHandler
	ServiceAuth       *middleware.ServiceAuth
	RedisConsumer     *consumer.Consumer
	Logger            *slog.Logger
}

// BuildCore opens the database pool and wires the ingestion service.
// The returned cleanup closes the pool.
func BuildCore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Core, func(), error) {
	dbPool, err := driver.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	core := NewCore(cfg, dbPool, log)
	core.DBPool = dbPool
	return core, dbPool.Close, nil
}

// NewCore wires repositories, fetchers and the orchestrator over db.
func NewCore(cfg *config.Config, db driver.PgxIface, log *slog.Logger) *Core {
	retrier := retry.NewRetrier(retry.RetryConfig{
		MaxAttempts:   cfg.Retry.MaxAttempts,
		BaseDelay:     cfg.Retry.BaseDelay,
		MaxDelay:      cfg.Retry.MaxDelay,
		BackoffFactor: cfg.Retry.BackoffFactor,
		JitterFactor:  cfg.Retry.JitterFactor,
	}, apperrors.IsTransientDBError, log)

	contentRepo := repository.NewContentItemRepository(db, log)
	discussionRepo := repository.NewDiscussionRepository(db, retrier, log)

	ua := cfg.Fetch.UserAgent
	budget := cfg.Fetch.CompactBudget
	fetchers := service.Fetchers{
		Techmeme: service.NewTechmemeFetcher(techmeme_web.NewClient(cfg.Techmeme, ua), budget, log),
		HackerNews: service.NewHackerNewsFetcher(hackernews_api.NewClient(cfg.HackerNews, ua),
			cfg.HackerNews.PrefetchConcurrency, budget, log),
		Reddit:      service.NewRedditFetcher(reddit_api.NewProvider(cfg.Reddit, ua), budget, log),
		Unsupported: service.NewUnsupportedFetcher(),
	}

	ingestion := service.NewDiscussionIngestionService(
		contentRepo,
		discussionRepo,
		fetchers,
		service.NewMetadataDenormalizer(contentRepo, log),
		cfg.Fetch,
		log,
	)

	return &Core{
		ContentRepo:    contentRepo,
		DiscussionRepo: discussionRepo,
		Ingestion:      ingestion,
	}
}

// BuildDependencies constructs everything the long-running service needs.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Dependencies, func(), error) {
	core, cleanup, err := BuildCore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	redisConsumer, err := consumer.NewConsumer(
		consumer.ConfigFrom(cfg.Consumer),
		consumer.NewDiscussionEventHandler(core.Ingestion, log),
		log,
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &Dependencies{
		Core:              core,
		Config:            cfg,
		DiscussionHandler: handler.NewDiscussionHandler(core.Ingestion, core.DiscussionRepo, log),
		HealthHandler:     handler.NewHealthHandler(core.DBPool, log),
		ServiceAuth:       middleware.NewServiceAuth(cfg.Auth, log),
		RedisConsumer:     redisConsumer,
		Logger:            log,
	}, cleanup, nil
}
