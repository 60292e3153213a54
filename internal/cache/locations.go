package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bbernstein/flixgo/internal/config"
	"github.com/bbernstein/flixgo/internal/models"
)

// locationEntry wraps a cached location with its expiry
type locationEntry struct {
	Data      *models.Location
	ExpiresAt time.Time
}

// LocationCache keeps recently resolved stations so that stitching an
// itinerary with repeated transfer points does not rescan the network list.
type LocationCache struct {
	lru    *lru.Cache[string, *locationEntry]
	ttl    time.Duration
	hits   uint64
	misses uint64
}

func NewLocationCache(cfg *config.CacheConfig) (*LocationCache, error) {
	if cfg == nil {
		cfg = config.GetCacheConfig()
	}

	lruCache, err := lru.New[string, *locationEntry](cfg.LocationLRUSize)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}

	return &LocationCache{
		lru: lruCache,
		ttl: cfg.GetLocationLRUTTL(),
	}, nil
}

// Get returns the cached location for a station id, or nil on a miss.
func (c *LocationCache) Get(stationID string) *models.Location {
	if entry, ok := c.lru.Get(stationID); ok {
		if time.Now().Before(entry.ExpiresAt) {
			c.hits++
			return entry.Data
		}
		// Entry expired, remove it
		c.lru.Remove(stationID)
	}
	c.misses++
	return nil
}

func (c *LocationCache) Set(stationID string, location *models.Location) {
	c.lru.Add(stationID, &locationEntry{
		Data:      location,
		ExpiresAt: time.Now().Add(c.ttl),
	})
}

// GetCacheStats returns statistics about cache hits and misses
func (c *LocationCache) GetCacheStats() map[string]uint64 {
	return map[string]uint64{
		"hits":   c.hits,
		"misses": c.misses,
	}
}

// Clear removes all entries from the cache
func (c *LocationCache) Clear() {
	c.lru.Purge()
}
