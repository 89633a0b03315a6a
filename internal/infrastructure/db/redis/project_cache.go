package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

const (
	activeProjectsKey = "projects:active"
	cacheTTL          = 30 * time.Second
)

// ProjectCache caches the active-project listing in Redis.
// It is a read-through accelerator only: every entry expires after cacheTTL
// and mutating operations invalidate eagerly, so a stale read window is
// bounded by the TTL even if an invalidation is lost.
type ProjectCache struct {
	client *redis.Client
}

// NewProjectCache creates a ProjectCache wrapping the given Redis client.
func NewProjectCache(client *redis.Client) *ProjectCache {
	return &ProjectCache{client: client}
}

// GetActive returns the cached listing, or (nil, nil) on a miss.
func (c *ProjectCache) GetActive(ctx context.Context) ([]*domain.Project, error) {
	raw, err := c.client.Get(ctx, activeProjectsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var projects []*domain.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return projects, nil
}

// SetActive stores the listing with the cache TTL.
func (c *ProjectCache) SetActive(ctx context.Context, projects []*domain.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, activeProjectsKey, raw, cacheTTL).Err()
}

// Invalidate drops the cached listing.
func (c *ProjectCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeProjectsKey).Err()
}
