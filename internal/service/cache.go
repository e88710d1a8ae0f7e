package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pbellini/viaggio/backend/internal/domain"
)

// GenerationCache stores reconciled activity lists keyed by trip and
// preference text, so identical generation requests can skip the model call.
// Implementations must be safe for concurrent use. A nil cache disables
// caching entirely.
type GenerationCache interface {
	Get(ctx context.Context, key string) ([]domain.Activity, bool, error)
	Set(ctx context.Context, key string, acts []domain.Activity) error
}

// CacheKey derives the cache key for one generation request.
// The preference text is trimmed and lower-cased before hashing, so
// whitespace and casing variants of the same request share an entry, and
// arbitrary user input never becomes part of a raw key.
func CacheKey(tripID uuid.UUID, preferences string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(preferences))))
	return fmt.Sprintf("viaggio:gen:%s:%s", tripID, hex.EncodeToString(sum[:8]))
}

// redisCache is the Redis-backed GenerationCache. Entries expire after ttl;
// cache misses and transport errors are indistinguishable to callers beyond
// the returned error, and the generation flow treats both as a miss.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a GenerationCache over an existing Redis client.
func NewRedisCache(client *redis.Client, ttl time.Duration) GenerationCache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]domain.Activity, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("service.redisCache.Get: %w", err)
	}
	var acts []domain.Activity
	if err := json.Unmarshal(raw, &acts); err != nil {
		return nil, false, fmt.Errorf("service.redisCache.Get: decode: %w", err)
	}
	return acts, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, acts []domain.Activity) error {
	raw, err := json.Marshal(acts)
	if err != nil {
		return fmt.Errorf("service.redisCache.Set: encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("service.redisCache.Set: %w", err)
	}
	return nil
}
