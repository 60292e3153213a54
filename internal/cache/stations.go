package cache

import (
	"sync"
	"time"

	"github.com/bbernstein/flixgo/internal/config"
	"github.com/bbernstein/flixgo/internal/models"
)

// StationCache holds the operator's full network station list. The list
// changes rarely, so one TTL-guarded blob is enough.
type StationCache struct {
	stations    []models.StationEntry
	ttl         time.Duration
	lastUpdated time.Time
	mu          sync.RWMutex
}

func NewStationCache(cfg *config.CacheConfig) *StationCache {
	if cfg == nil {
		cfg = config.GetCacheConfig()
	}
	return &StationCache{
		stations:    make([]models.StationEntry, 0),
		ttl:         cfg.GetStationListTTL(),
		lastUpdated: time.Time{}, // Zero time to ensure first fetch
	}
}

func (c *StationCache) GetStations() []models.StationEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.isExpired() {
		return nil
	}
	return c.stations
}

func (c *StationCache) SetStations(stations []models.StationEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stations = stations
	c.lastUpdated = time.Now()
}

func (c *StationCache) isExpired() bool {
	return time.Since(c.lastUpdated) > c.ttl
}
