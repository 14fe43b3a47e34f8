package rates

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/logger"
	"github.com/nasr0000/bitrix-ruble-to-tenge/internal/models"
)

// RedisCache shares the latest snapshot between service instances. Freshness
// is delegated to the server-side expiration set on write.
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache storing the snapshot as JSON
// under the given key.
func NewRedisCache(client *redis.Client, key string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Get fetches the cached snapshot; an expired or absent key is a miss.
func (c *RedisCache) Get(ctx context.Context) (*models.RateSnapshot, error) {
	val, err := c.client.Get(ctx, c.key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("rate cache read failed",
			"key", c.key,
			"error", err,
		)
		return nil, err
	}

	var snap models.RateSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		logger.Log.Errorw("rate cache payload invalid",
			"key", c.key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	return &snap, nil
}

// Set stores the snapshot with the configured expiration.
func (c *RedisCache) Set(ctx context.Context, snap models.RateSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	err = c.client.Set(ctx, c.key, payload, c.ttl).Err()

	logger.Log.Infow("rate cache set",
		"key", c.key,
		"sell", snap.Sell,
		"buy", snap.Buy,
		"error", err,
	)

	return err
}
