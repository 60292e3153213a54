package station

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/bbernstein/flixgo/internal/cache"
	"github.com/bbernstein/flixgo/internal/config"
	"github.com/bbernstein/flixgo/internal/models"
	"github.com/bbernstein/flixgo/pkg/http/client"
)

// Directory resolves stations against the operator's network list. The
// full list is fetched once and cached; individual lookups go through an
// LRU on top of it.
type Directory struct {
	httpClient *client.Client
	cache      *cache.StationCache
	locations  *cache.LocationCache
	cacheMutex sync.RWMutex
}

func NewDirectory(httpClient *client.Client, stationCache *cache.StationCache) (*Directory, error) {
	cacheConfig := config.GetCacheConfig()
	if stationCache == nil {
		stationCache = cache.NewStationCache(cacheConfig)
	}

	locationCache, err := cache.NewLocationCache(cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("creating location cache: %w", err)
	}

	return &Directory{
		httpClient: httpClient,
		cache:      stationCache,
		locations:  locationCache,
	}, nil
}

// Resolve returns full station detail for a numeric station id.
func (d *Directory) Resolve(ctx context.Context, stationID string) (*models.Location, error) {
	if cached := d.locations.Get(stationID); cached != nil {
		log.Trace().Str("station_id", stationID).Msg("Resolve: location cache hit")
		return cached, nil
	}

	stations, err := d.getStationList(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting station list: %w", err)
	}

	for _, entry := range stations {
		if entry.ID == stationID {
			location := entry.Location
			d.locations.Set(stationID, &location)
			log.Trace().Str("station_id", stationID).Str("name", location.Name).Msg("Resolve: found station")
			return &location, nil
		}
	}

	return nil, fmt.Errorf("station not found: %s", stationID)
}

// Suggest returns stations whose alias blob contains the query,
// case-insensitively. The upstream ships aliases as one free-text field.
func (d *Directory) Suggest(ctx context.Context, query string) ([]models.Location, error) {
	stations, err := d.getStationList(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting station list: %w", err)
	}

	search := strings.ToLower(query)
	var matches []models.Location
	for _, entry := range stations {
		if strings.Contains(strings.ToLower(entry.Aliases), search) {
			matches = append(matches, entry.Location)
		}
	}

	return matches, nil
}

// FindNearest returns the stations closest to a coordinate, sorted by
// distance ascending.
func (d *Directory) FindNearest(ctx context.Context, lat, lon float64, limit int) ([]models.Location, error) {
	stations, err := d.getStationList(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting station list: %w", err)
	}

	// Calculate distances in parallel using worker pool
	const workerCount = 4
	work := make(chan models.Location, len(stations))
	results := make(chan models.Location, len(stations))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for location := range work {
				location.Distance = calculateDistance(lat, lon, location.Latitude, location.Longitude)
				results <- location
			}
		}()
	}

	// Send work
	for _, entry := range stations {
		work <- entry.Location
	}
	close(work)

	// Wait for workers and close results
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect and sort results
	var withDistance []models.Location
	for location := range results {
		withDistance = append(withDistance, location)
	}

	sort.Slice(withDistance, func(i, j int) bool {
		return withDistance[i].Distance < withDistance[j].Distance
	})

	if len(withDistance) > limit {
		withDistance = withDistance[:limit]
	}

	return withDistance, nil
}

func (d *Directory) getStationList(ctx context.Context) ([]models.StationEntry, error) {
	// Check cache first
	d.cacheMutex.RLock()
	cachedStations := d.cache.GetStations()
	d.cacheMutex.RUnlock()

	if cachedStations != nil {
		log.Debug().Msg("Cache HIT for station list")
		return cachedStations, nil
	}
	log.Debug().Msg("Cache MISS for station list, fetching network")

	resp, err := d.httpClient.Get(ctx, "/network.json")
	if err != nil {
		return nil, fmt.Errorf("fetching network: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching network: unexpected status %d", resp.StatusCode)
	}

	var networkResp struct {
		Stations []struct {
			ID          int64  `json:"id"`
			Name        string `json:"name"`
			FullAddress string `json:"full_address"`
			Aliases     string `json:"aliases"`
			Coordinates struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"coordinates"`
		} `json:"stations"`
	}

	if err := json.Unmarshal(resp.Body, &networkResp); err != nil {
		return nil, fmt.Errorf("decoding network response: %w", err)
	}

	// Convert to directory entries
	stations := make([]models.StationEntry, len(networkResp.Stations))
	for i, s := range networkResp.Stations {
		var address *string
		if s.FullAddress != "" {
			addressValue := s.FullAddress
			address = &addressValue
		}

		stations[i] = models.StationEntry{
			Location: models.Location{
				ID:        strconv.FormatInt(s.ID, 10),
				Name:      s.Name,
				Address:   address,
				Latitude:  s.Coordinates.Latitude,
				Longitude: s.Coordinates.Longitude,
			},
			Aliases: s.Aliases,
		}
	}

	log.Debug().Int("station_count", len(stations)).Msgf("Caching list of %d stations", len(stations))

	// Update cache
	d.cacheMutex.Lock()
	d.cache.SetStations(stations)
	d.cacheMutex.Unlock()

	return stations, nil
}

func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0 // km

	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
