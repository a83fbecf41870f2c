package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

var ErrDisabled = errors.New("notifications disabled")

// RedisPublisher pushes events onto a Redis list. Consumers pop from the
// other end (BRPOP) to get FIFO order.
type RedisPublisher struct {
	client    *redis.Client
	queueName string
	logger    *slog.Logger
}

// NewRedisPublisher parses url and returns a publisher. It does not dial;
// connection errors surface on Publish and Health.
func NewRedisPublisher(url, queueName string, logger *slog.Logger) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if queueName == "" {
		return nil, errors.New("queue name is required")
	}
	return &RedisPublisher{
		client:    redis.NewClient(opts),
		queueName: queueName,
		logger:    logger,
	}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, ev InquiryEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.LPush(ctx, p.queueName, data).Err(); err != nil {
		return fmt.Errorf("failed to push event to queue: %w", err)
	}
	p.logger.Debug("event published",
		slog.String("type", ev.Type),
		slog.String("id", ev.ID),
		slog.String("queue", p.queueName),
	)
	return nil
}

func (p *RedisPublisher) Health(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

// QueueLength returns the number of undelivered events.
func (p *RedisPublisher) QueueLength(ctx context.Context) (int64, error) {
	n, err := p.client.LLen(ctx, p.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return n, nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
