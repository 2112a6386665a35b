package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NeeleshGajare/Global-Location-Backend/internal/core/domain"
)

const (
	placeCacheTTL = 15 * time.Minute

	// tombstoneTTL bounds how long after a delete the key refuses re-fills.
	// It must outlast the window between a repository read and the cache
	// write that follows it.
	tombstoneTTL = 30 * time.Second

	// tombstone marks a recently deleted place. Never valid place JSON.
	tombstone = "\x00deleted"
)

// PlaceCache is a read-through cache for individual places.
// Key format: place:<id>. Entries are written only from committed reads and
// only when the key is free (SET NX): Invalidate replaces the entry with a
// short-lived tombstone, so a read that loaded the document just before a
// delete committed cannot re-populate the key afterwards.
type PlaceCache struct {
	client *redis.Client
}

// NewPlaceCache creates a PlaceCache wrapping the given Redis client.
func NewPlaceCache(client *redis.Client) *PlaceCache {
	return &PlaceCache{client: client}
}

// Get returns the cached place, or (nil, nil) on a miss. A tombstoned key
// reads as a miss so callers fall through to storage.
func (c *PlaceCache) Get(ctx context.Context, placeID string) (*domain.Place, error) {
	raw, err := c.client.Get(ctx, c.key(placeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("place cache get: %w", err)
	}
	if string(raw) == tombstone {
		return nil, nil
	}

	var place domain.Place
	if err := json.Unmarshal(raw, &place); err != nil {
		// Corrupt entry: drop it and report a miss.
		_ = c.client.Del(ctx, c.key(placeID)).Err()
		return nil, nil
	}
	return &place, nil
}

// Set stores the place with the cache TTL, unless the key is already held
// by a live entry or a tombstone.
func (c *PlaceCache) Set(ctx context.Context, place *domain.Place) error {
	raw, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("place cache marshal: %w", err)
	}
	return c.client.SetNX(ctx, c.key(place.ID), raw, placeCacheTTL).Err()
}

// Invalidate replaces the cached entry for placeID with a tombstone.
func (c *PlaceCache) Invalidate(ctx context.Context, placeID string) error {
	return c.client.Set(ctx, c.key(placeID), tombstone, tombstoneTTL).Err()
}

func (c *PlaceCache) key(placeID string) string {
	return "place:" + placeID
}
