package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultChannelPrefix = "openci:events"

// RedisPublisher publishes events as JSON on "<prefix>:<entity>" channels.
type RedisPublisher struct {
	client *redis.Client
	prefix string
}

// NewRedisPublisher creates a publisher on client. An empty prefix falls
// back to "openci:events".
func NewRedisPublisher(client *redis.Client, prefix string) *RedisPublisher {
	if prefix == "" {
		prefix = defaultChannelPrefix
	}
	return &RedisPublisher{client: client, prefix: prefix}
}

// Channel returns the channel events for entity are published on.
func (p *RedisPublisher) Channel(entity string) string {
	return p.prefix + ":" + entity
}

func (p *RedisPublisher) Publish(ctx context.Context, evt Event) error {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.Publish(ctx, p.Channel(evt.Entity), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s %s event: %w", evt.Entity, evt.Type, err)
	}
	return nil
}
