// Package consumer reads discussion fetch requests from a Redis stream.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"discussion-fetcher/config"
)

// Config holds consumer configuration.
type Config struct {
	// RedisURL is the Redis connection URL.
	RedisURL string
	// GroupName is the consumer group name.
	GroupName string
	// ConsumerName is this consumer's name within the group.
	ConsumerName string
	// StreamKey is the Redis Stream key to consume from.
	StreamKey string
	// BatchSize is the number of messages to read at once.
	BatchSize int64
	// BlockTimeout is how long to block waiting for messages.
	BlockTimeout time.Duration
	// ClaimIdleTime is how long a message stays pending before it is claimed again.
	ClaimIdleTime time.Duration
	// Enabled determines if the consumer is active.
	Enabled bool
}

// ConfigFrom maps the service configuration onto consumer settings. A missing
// consumer name gets a random one so replicas never share pending entries.
func ConfigFrom(cfg config.ConsumerConfig) Config {
	name := cfg.ConsumerName
	if name == "" {
		name = "discussion-fetcher-" + uuid.NewString()[:8]
	}
	return Config{
		RedisURL:      cfg.RedisURL,
		GroupName:     cfg.GroupName,
		ConsumerName:  name,
		StreamKey:     cfg.StreamKey,
		BatchSize:     int64(cfg.BatchSize),
		BlockTimeout:  cfg.BlockTimeout,
		ClaimIdleTime: cfg.ClaimIdle,
		Enabled:       cfg.Enabled,
	}
}

// Event represents a domain event from the stream.
type Event struct {
	// MessageID is the Redis Stream message ID.
	MessageID string
	// EventID is the unique event identifier.
	EventID string
	// EventType is the type of event.
	EventType string
	// Source is the service that produced the event.
	Source string
	// CreatedAt is when the event was created.
	CreatedAt time.Time
	// Payload is the event-specific data.
	Payload json.RawMessage
	// Metadata contains additional context.
	Metadata map[string]string
}

// EventHandler processes events from the stream. A nil error ACKs the message.
type EventHandler interface {
	HandleEvent(ctx context.Context, event Event) error
}

// Consumer consumes events from Redis Streams.
type Consumer struct {
	client       *redis.Client
	config       Config
	handler      EventHandler
	logger       *slog.Logger
	shutdownChan chan struct{}
	stopOnce     sync.Once
	started      atomic.Bool
	done         chan struct{}
}

// NewConsumer creates a new Redis Streams consumer.
func NewConsumer(cfg Config, handler EventHandler, logger *slog.Logger) (*Consumer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Enabled {
		return &Consumer{config: cfg, logger: logger}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		client:       redis.NewClient(opts),
		config:       cfg,
		handler:      handler,
		logger:       logger,
		shutdownChan: make(chan struct{}),
		done:         make(chan struct{}),
	}, nil
}

// Start begins consuming events from the stream.
func (c *Consumer) Start(ctx context.Context) error {
	if !c.config.Enabled {
		c.logger.Info("consumer disabled, not starting")
		return nil
	}

	if err := c.ensureConsumerGroup(ctx); err != nil {
		return err
	}

	c.logger.Info("starting consumer",
		"stream", c.config.StreamKey,
		"group", c.config.GroupName,
		"consumer", c.config.ConsumerName,
	)

	c.started.Store(true)
	go c.consumeLoop(ctx)
	return nil
}

// Stop stops the loop and waits for the in-flight batch to finish.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() {
		if c.shutdownChan == nil {
			return
		}
		close(c.shutdownChan)
		if c.started.Load() {
			<-c.done
		}
		if err := c.client.Close(); err != nil {
			c.logger.Warn("failed to close redis client", "error", err)
		}
	})
}

func (c *Consumer) ensureConsumerGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.config.StreamKey, c.config.GroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) consumeLoop(ctx context.Context) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer context cancelled, stopping")
			return
		case <-c.shutdownChan:
			c.logger.Info("consumer shutdown requested, stopping")
			return
		default:
		}

		if err := c.readAndProcess(ctx); err != nil {
			c.logger.Error("error processing events", "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			case <-c.shutdownChan:
			}
		}
	}
}

// readAndProcess first reclaims messages that stayed pending longer than
// ClaimIdleTime, then reads new ones. Un-ACKed retryable requests get another
// attempt once they have been idle long enough.
func (c *Consumer) readAndProcess(ctx context.Context) error {
	if c.config.ClaimIdleTime > 0 {
		claimed, _, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   c.config.StreamKey,
			Group:    c.config.GroupName,
			Consumer: c.config.ConsumerName,
			MinIdle:  c.config.ClaimIdleTime,
			Start:    "0-0",
			Count:    c.config.BatchSize,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if len(claimed) > 0 {
			c.logger.Info("reclaimed pending messages", "count", len(claimed))
			c.process(ctx, claimed)
		}
	}

	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.config.GroupName,
		Consumer: c.config.ConsumerName,
		Streams:  []string{c.config.StreamKey, ">"},
		Count:    c.config.BatchSize,
		Block:    c.config.BlockTimeout,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, stream := range streams {
		c.process(ctx, stream.Messages)
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, messages []redis.XMessage) {
	for _, message := range messages {
		event := parseEvent(message)

		if err := c.handler.HandleEvent(ctx, event); err != nil {
			c.logger.Warn("event left pending",
				"message_id", message.ID,
				"event_type", event.EventType,
				"error", err,
			)
			continue
		}

		if err := c.client.XAck(ctx, c.config.StreamKey, c.config.GroupName, message.ID).Err(); err != nil {
			c.logger.Error("failed to acknowledge message",
				"message_id", message.ID,
				"error", err,
			)
		}
	}
}

// parseEvent converts a Redis Stream message to an Event.
func parseEvent(message redis.XMessage) Event {
	event := Event{
		MessageID: message.ID,
		Metadata:  make(map[string]string),
	}

	if v, ok := message.Values["event_id"].(string); ok {
		event.EventID = v
	}
	if v, ok := message.Values["event_type"].(string); ok {
		event.EventType = v
	}
	if v, ok := message.Values["source"].(string); ok {
		event.Source = v
	}
	if v, ok := message.Values["created_at"].(string); ok {
		event.CreatedAt, _ = time.Parse(time.RFC3339, v)
	}
	if v, ok := message.Values["payload"].(string); ok {
		event.Payload = json.RawMessage(v)
	}
	if v, ok := message.Values["metadata"].(string); ok {
		_ = json.Unmarshal([]byte(v), &event.Metadata)
	}

	return event
}
