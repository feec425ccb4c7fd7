package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/config"
	"github.com/openci/openci-backend/internal/events"
)

// OpenPublisher returns the change-event publisher for cfg. Without an
// address events are dropped. The returned close func is always non-nil.
func OpenPublisher(ctx context.Context, cfg *config.RedisConfig, logger zerolog.Logger) (events.Publisher, func() error, error) {
	if cfg.Addr == "" {
		logger.Info().Msg("redis not configured, change events disabled")
		return events.NopPublisher{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info().Str("addr", cfg.Addr).Str("prefix", cfg.ChannelPrefix).Msg("change events enabled")
	return events.NewRedisPublisher(client, cfg.ChannelPrefix), client.Close, nil
}
