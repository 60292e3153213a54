package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// LRU cache for resolved station locations
	LocationLRUSize       int
	LocationLRUTTLMinutes int

	// TTL for the cached network station list
	StationListTTLDays int
}

const (
	// Default values
	defaultLocationLRUSize    = 1000
	defaultLocationTTLMinutes = 60
	defaultStationListTTLDays = 1
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		LocationLRUSize:       getEnvInt("CACHE_LOCATION_LRU_SIZE", defaultLocationLRUSize),
		LocationLRUTTLMinutes: getEnvInt("CACHE_LOCATION_LRU_TTL_MINUTES", defaultLocationTTLMinutes),
		StationListTTLDays:    getEnvInt("CACHE_STATION_LIST_TTL_DAYS", defaultStationListTTLDays),
	}

	log.Debug().
		Int("LocationLRUSize", config.LocationLRUSize).
		Int("LocationLRUTTLMinutes", config.LocationLRUTTLMinutes).
		Int("StationListTTLDays", config.StationListTTLDays).
		Msg("Cache configuration loaded")

	return config
}

// Helper methods for the CacheConfig struct
func (c *CacheConfig) GetLocationLRUTTL() time.Duration {
	return time.Duration(c.LocationLRUTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetStationListTTL() time.Duration {
	return time.Duration(c.StationListTTLDays) * 24 * time.Hour
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}
