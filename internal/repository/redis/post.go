package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pratikw008/blog-rest-api/domain"
	"github.com/pratikw008/blog-rest-api/internal/repository/cache"
)

const (
	KeyPost = "post:%d"

	DefaultPostTTL = 10 * time.Minute

	// physical key lifetime as a multiple of the logical ttl
	physicalTTLFactor = 2
)

type postCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.PostCache = (*postCache)(nil)

func NewPostCache(client *redis.Client, ttl time.Duration) *postCache {
	if ttl <= 0 {
		ttl = DefaultPostTTL
	}
	return &postCache{
		client: client,
		ttl:    ttl,
	}
}

// GetPost returns the cached post and whether it is past its logical expiry.
func (c *postCache) GetPost(ctx context.Context, id int64) (domain.Post, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyPost, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Post{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Post{}, false, err
	}

	var entry cache.Entry[domain.Post]
	if err = json.Unmarshal(data, &entry); err != nil {
		return domain.Post{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

func (c *postCache) SetPost(ctx context.Context, p *domain.Post) error {
	data, err := json.Marshal(cache.NewEntry(*p, c.ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyPost, p.ID), data, c.ttl*physicalTTLFactor).Err()
}

func (c *postCache) DeletePost(ctx context.Context, id int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyPost, id)).Err()
}
