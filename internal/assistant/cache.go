package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ClassifyCache memoizes classifier output per prompt. Redis being down never
// blocks classification: errors degrade to a cache miss.
type ClassifyCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewClassifyCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *ClassifyCache {
	return &ClassifyCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *ClassifyCache) key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "classify:" + hex.EncodeToString(sum[:])
}

// Get returns the cached classification for prompt, if present.
func (c *ClassifyCache) Get(ctx context.Context, prompt string) (string, bool) {
	val, err := c.rdb.Get(ctx, c.key(prompt)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Warn("classify cache read failed", zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// Put stores the classification for prompt with the configured TTL.
func (c *ClassifyCache) Put(ctx context.Context, prompt, category string) {
	if err := c.rdb.Set(ctx, c.key(prompt), category, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("classify cache write failed", zap.Error(err))
	}
}
