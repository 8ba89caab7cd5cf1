package cache

import (
	"context"
	"time"

	"mercadopago_sync/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// ConnectRedis creates a client and checks it with a PING. The client is
// returned even when the ping fails so the caller can decide to continue.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("[cache][redis] ping failed")
		return client, err
	}
	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("[cache][redis] client initialized")
	return client, nil
}
