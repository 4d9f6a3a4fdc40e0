package premiuminfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/placedly/backend/pkg/logx"
	"github.com/placedly/backend/recruitment/premium"
)

const (
	membersCacheKey = "premium:members"
	membersCacheTTL = 60 * time.Second
)

// RedisMemberCache is a best-effort cache in front of a membership
// repository. The projection is loaded wholesale on every listing, so a
// short TTL bounds that cost. Cache failures fall through to the inner
// repository; they never fail a request on their own.
type RedisMemberCache struct {
	client *redis.Client
	inner  premium.Repository
}

// NewRedisMemberCache wraps a membership repository with a Redis cache.
func NewRedisMemberCache(client *redis.Client, inner premium.Repository) *RedisMemberCache {
	return &RedisMemberCache{client: client, inner: inner}
}

// ListAll returns the cached projection when fresh, loading and caching
// it otherwise.
func (c *RedisMemberCache) ListAll(ctx context.Context) ([]premium.Membership, error) {
	payload, err := c.client.Get(ctx, membersCacheKey).Bytes()
	if err == nil {
		var members []premium.Membership
		if err := json.Unmarshal(payload, &members); err == nil {
			return members, nil
		}
		logx.Warn("discarding corrupt premium membership cache entry")
	} else if err != redis.Nil {
		logx.Warnf("premium membership cache read failed: %v", err)
	}

	members, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(members); err == nil {
		if err := c.client.Set(ctx, membersCacheKey, payload, membersCacheTTL).Err(); err != nil {
			logx.Warnf("premium membership cache write failed: %v", err)
		}
	}
	return members, nil
}
