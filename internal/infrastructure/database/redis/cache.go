// Package redis provides the optional shared cache for PubChem compound
// lookups.  Only successful lookups are stored; degraded records never reach
// Redis.
package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turtacn/AyurChem-Intelligence/internal/domain/compound"
	"github.com/turtacn/AyurChem-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

const (
	DefaultPrefix = "ayurchem:compound:"
	DefaultTTL    = 24 * time.Hour
)

// CompoundCache stores compound records as JSON under prefix+lowercase name.
type CompoundCache struct {
	client *Client
	logger logging.Logger
	prefix string
	ttl    time.Duration
	jitter func(time.Duration) time.Duration
}

type CacheOption func(*CompoundCache)

func WithPrefix(prefix string) CacheOption {
	return func(c *CompoundCache) { c.prefix = prefix }
}

// WithTTL sets the base expiry.  Each write spreads it by up to ±10%.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *CompoundCache) { c.ttl = ttl }
}

func NewCompoundCache(client *Client, log logging.Logger, opts ...CacheOption) *CompoundCache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	c := &CompoundCache{
		client: client,
		logger: log,
		prefix: DefaultPrefix,
		ttl:    DefaultTTL,
		jitter: jitterTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CompoundCache) key(name string) string {
	return c.prefix + strings.ToLower(strings.TrimSpace(name))
}

func jitterTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	spread := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(spread)
}

// Get reports a miss as (zero, false, nil).  Undecodable entries count as a
// miss and are logged.
func (c *CompoundCache) Get(ctx context.Context, name string) (compound.Compound, bool, error) {
	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err == redis.Nil {
		return compound.Compound{}, false, nil
	}
	if err != nil {
		return compound.Compound{}, false, errors.Wrap(err, errors.CodeCacheError, "redis: compound read failed")
	}

	var out compound.Compound
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Warn("discarding undecodable cache entry", logging.String("key", c.key(name)), logging.Err(err))
		return compound.Compound{}, false, nil
	}
	return out, true, nil
}

// Set writes cmp unless it is degraded.
func (c *CompoundCache) Set(ctx context.Context, name string, cmp compound.Compound) error {
	if cmp.Degraded() || cmp.Source == compound.SourceError {
		return nil
	}
	data, err := json.Marshal(cmp)
	if err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "redis: compound encode failed")
	}
	if err := c.client.Set(ctx, c.key(name), data, c.jitter(c.ttl)).Err(); err != nil {
		return errors.Wrap(err, errors.CodeCacheError, "redis: compound write failed")
	}
	return nil
}

func (c *CompoundCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx)
}

func (c *CompoundCache) Close() error {
	return c.client.Close()
}

//Personal.AI order the ending
