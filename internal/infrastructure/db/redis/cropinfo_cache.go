package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agrilink/farm-market/internal/core/domain"
)

const (
	cropInfoTTL     = 15 * time.Minute
	cropInfoListKey = "cropinfo:all"
)

// CropInfoCache is a read-through cache for crop reference entries.
// Entries are stored as JSON under cropinfo:<id>, the full listing under a
// single list key. Mutations drop both.
type CropInfoCache struct {
	client *redis.Client
}

// NewCropInfoCache creates a CropInfoCache wrapping the given Redis client.
func NewCropInfoCache(client *redis.Client) *CropInfoCache {
	return &CropInfoCache{client: client}
}

// Get returns the cached entry for id. The second return reports a cache hit.
func (c *CropInfoCache) Get(ctx context.Context, id string) (*domain.CropInfo, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cropinfo cache get: %w", err)
	}

	var info domain.CropInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, false, fmt.Errorf("cropinfo cache decode: %w", err)
	}
	return &info, true, nil
}

// Set caches a single entry for cropInfoTTL.
func (c *CropInfoCache) Set(ctx context.Context, info *domain.CropInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("cropinfo cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(info.ID), raw, cropInfoTTL).Err()
}

// GetList returns the cached full listing. The second return reports a hit.
func (c *CropInfoCache) GetList(ctx context.Context) ([]*domain.CropInfo, bool, error) {
	raw, err := c.client.Get(ctx, cropInfoListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cropinfo cache get list: %w", err)
	}

	var infos []*domain.CropInfo
	if err := json.Unmarshal(raw, &infos); err != nil {
		return nil, false, fmt.Errorf("cropinfo cache decode list: %w", err)
	}
	return infos, true, nil
}

// SetList caches the full listing for cropInfoTTL.
func (c *CropInfoCache) SetList(ctx context.Context, infos []*domain.CropInfo) error {
	raw, err := json.Marshal(infos)
	if err != nil {
		return fmt.Errorf("cropinfo cache encode list: %w", err)
	}
	return c.client.Set(ctx, cropInfoListKey, raw, cropInfoTTL).Err()
}

// Invalidate drops the entry for id together with the list key.
func (c *CropInfoCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id), cropInfoListKey).Err()
}

func (c *CropInfoCache) key(id string) string {
	return "cropinfo:" + id
}
