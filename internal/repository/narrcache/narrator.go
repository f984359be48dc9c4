// Package narrcache caches rendered narratives in a key-value store. Two
// identical queries over the immutable corpus produce the same structured
// answer, so the narrative can be reused instead of paying for another
// chat completion.
package narrcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/opencamara/actadex/internal/db"
)

const cacheKeyPrefix = "actadex:narr_cache:"

// store is the consumer interface for the narrative cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// narrator is the inner formatter being decorated.
type narrator interface {
	Narrate(ctx context.Context, question string, structured any) (string, error)
}

// CachedNarrator caches narratives in a key-value store.
type CachedNarrator struct {
	inner      narrator
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner narrator,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedNarrator {
	return &CachedNarrator{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Narrate returns a cached narrative or calls the inner formatter.
func (c *CachedNarrator) Narrate(ctx context.Context, question string, structured any) (string, error) {
	key, ok := c.cacheKey(question, structured)
	if !ok {
		return c.inner.Narrate(ctx, question, structured)
	}

	if text, hit := c.getFromCache(ctx, key); hit {
		c.incCache("hit")
		return text, nil
	}

	c.incCache("miss")

	text, err := c.inner.Narrate(ctx, question, structured)
	if err != nil {
		return "", fmt.Errorf("narrate: %w", err)
	}

	c.putToCache(ctx, key, text)
	return text, nil
}

func (c *CachedNarrator) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the question together with the structured payload:
// the same question can yield different answers once the corpus changes
// between deployments.
func (c *CachedNarrator) cacheKey(question string, structured any) (string, bool) {
	payload, err := json.Marshal(structured)
	if err != nil {
		c.logger.Warn("Failed to marshal structured answer for cache key", zap.Error(err))
		return "", false
	}
	h := sha256.New()
	h.Write([]byte(question))
	h.Write([]byte{0})
	h.Write(payload)
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil)), true
}

func (c *CachedNarrator) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached narrative", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *CachedNarrator) putToCache(ctx context.Context, key, text string) {
	if err := c.store.SetWithTTL(ctx, key, []byte(text), c.ttl); err != nil {
		c.logger.Warn("Failed to cache narrative", zap.String("key", key), zap.Error(err))
	}
}
