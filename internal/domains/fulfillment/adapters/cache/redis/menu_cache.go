package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	catalogdomain "github.com/foodcartapp/foodcart-api/internal/domains/catalog/domain"
	"github.com/foodcartapp/foodcart-api/internal/domains/fulfillment/ports"
)

var _ ports.CatalogSource = (*MenuCache)(nil)

const menuSnapshotKey = "fulfillment:menu-snapshot"

// MenuCache decorates a CatalogSource with a short-lived Redis cache of the
// availability snapshot. Correctness does not depend on it: every lookup
// falls through to the inner source on a miss or on any Redis failure, and
// Invalidate is called from the catalog service after menu entry mutations.
type MenuCache struct {
	inner  ports.CatalogSource
	client *goredis.Client
	ttl    time.Duration
}

// NewMenuCache wires the cache decorator. A nil client disables caching.
func NewMenuCache(inner ports.CatalogSource, client *goredis.Client, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &MenuCache{inner: inner, client: client, ttl: ttl}
}

// ListMenuListings serves the snapshot from Redis when fresh, rebuilding and
// storing it otherwise.
func (c *MenuCache) ListMenuListings(ctx context.Context) ([]catalogdomain.MenuListing, error) {
	if c == nil || c.inner == nil {
		return nil, errors.New("menu cache not configured")
	}
	if c.client == nil {
		return c.inner.ListMenuListings(ctx)
	}
	if payload, err := c.client.Get(ctx, menuSnapshotKey).Bytes(); err == nil {
		var listings []catalogdomain.MenuListing
		if err := json.Unmarshal(payload, &listings); err == nil {
			return listings, nil
		}
	}
	listings, err := c.inner.ListMenuListings(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(listings); err == nil {
		_ = c.client.Set(ctx, menuSnapshotKey, payload, c.ttl).Err()
	}
	return listings, nil
}

// Invalidate drops the cached snapshot; the next read rebuilds it.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, menuSnapshotKey).Err()
}
