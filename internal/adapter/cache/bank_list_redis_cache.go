package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// BankListRedisCache stores the PSE bank list as a JSON array under a single
// key with no expiry.
type BankListRedisCache struct {
	client redisKV
	key    string
}

var _ interfaces.IBankListCache = (*BankListRedisCache)(nil)

func NewBankListRedisCache(client redisKV, key string) *BankListRedisCache {
	return &BankListRedisCache{client: client, key: key}
}

func (c *BankListRedisCache) Set(ctx context.Context, banks []entities.Bank) error {
	b, err := json.Marshal(banks)
	if err != nil {
		return fmt.Errorf("marshal bank list: %w", err)
	}
	return c.client.Set(ctx, c.key, b, 0).Err()
}

// Get returns nil when the key has never been written.
func (c *BankListRedisCache) Get(ctx context.Context) ([]entities.Bank, error) {
	b, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var banks []entities.Bank
	if err := json.Unmarshal(b, &banks); err != nil {
		return nil, fmt.Errorf("unmarshal bank list: %w", err)
	}
	return banks, nil
}
