package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/criissj/gestion-de-inventario/internal/dto"

	"github.com/redis/go-redis/v9"
)

const (
	catalogCacheKey = "catalog:active"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogCache is a best-effort Redis cache for the active-catalog listing,
// the hottest read in the system (the POS terminal refreshes it after every
// sale). All methods tolerate a nil client so unit tests can skip Redis.
type CatalogCache struct {
	rdb *redis.Client
}

func NewCatalogCache(rdb *redis.Client) *CatalogCache { return &CatalogCache{rdb: rdb} }

// Get returns the cached listing, or ok=false on miss / decode failure.
func (c *CatalogCache) Get(ctx context.Context) ([]dto.ProductResponse, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []dto.ProductResponse
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores the listing — best effort, errors are ignored.
func (c *CatalogCache) Set(ctx context.Context, products []dto.ProductResponse) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(products); err == nil {
		_ = c.rdb.Set(ctx, catalogCacheKey, b, catalogCacheTTL).Err()
	}
}

// Invalidate drops the cached listing. Called after any product write and
// after every sale (stock changed).
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, catalogCacheKey).Err()
}
