package station

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbernstein/flixgo/internal/cache"
	"github.com/bbernstein/flixgo/internal/config"
	"github.com/bbernstein/flixgo/internal/models"
	"github.com/bbernstein/flixgo/pkg/http/client"
)

type networkStation struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullAddress string `json:"full_address"`
	Aliases     string `json:"aliases"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
}

func makeNetworkStation(id int64, name, address, aliases string, lat, lon float64) networkStation {
	s := networkStation{
		ID:          id,
		Name:        name,
		FullAddress: address,
		Aliases:     aliases,
	}
	s.Coordinates.Latitude = lat
	s.Coordinates.Longitude = lon
	return s
}

func newNetworkServer(t *testing.T, stations []networkStation) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/network.json", r.URL.Path)
		response := struct {
			Stations []networkStation `json:"stations"`
		}{Stations: stations}

		err := json.NewEncoder(w).Encode(response)
		require.NoError(t, err)
	}))
}

func newTestDirectory(t *testing.T, serverURL string) *Directory {
	t.Helper()

	httpClient := client.New(client.Options{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	})

	stationCache := cache.NewStationCache(&config.CacheConfig{
		StationListTTLDays: 1,
	})

	directory, err := NewDirectory(httpClient, stationCache)
	require.NoError(t, err)
	return directory
}

func TestDirectoryResolve(t *testing.T) {
	srv := newNetworkServer(t, []networkStation{
		makeNetworkStation(88, "Berlin central bus station", "Masurenallee 4-6, 14057 Berlin",
			"Berlin ZOB, Berlin Westend", 52.5203, 13.2769),
		makeNetworkStation(113, "Munich central bus station", "Arnulfstr. 21, 80335 Munich",
			"Muenchen ZOB, Munich Hackerbruecke", 48.1423, 11.5504),
	})
	defer srv.Close()

	directory := newTestDirectory(t, srv.URL)

	tests := []struct {
		name      string
		stationID string
		want      *models.Location
		wantErr   bool
	}{
		{
			name:      "existing station",
			stationID: "88",
			want: &models.Location{
				ID:        "88",
				Name:      "Berlin central bus station",
				Address:   stringPtr("Masurenallee 4-6, 14057 Berlin"),
				Latitude:  52.5203,
				Longitude: 13.2769,
			},
			wantErr: false,
		},
		{
			name:      "non-existent station",
			stationID: "99999",
			want:      nil,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := directory.Resolve(context.Background(), tt.stationID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectoryResolveUsesLocationCache(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		response := struct {
			Stations []networkStation `json:"stations"`
		}{Stations: []networkStation{
			makeNetworkStation(740, "Frankfurt Hbf", "", "Frankfurt am Main", 50.1072, 8.6647),
		}}
		err := json.NewEncoder(w).Encode(response)
		require.NoError(t, err)
	}))
	defer srv.Close()

	directory := newTestDirectory(t, srv.URL)

	first, err := directory.Resolve(context.Background(), "740")
	require.NoError(t, err)

	second, err := directory.Resolve(context.Background(), "740")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, requests, "second resolve should be served from cache")
}

func TestDirectorySuggest(t *testing.T) {
	srv := newNetworkServer(t, []networkStation{
		makeNetworkStation(88, "Berlin central bus station", "", "Berlin ZOB, Berlin Westend", 52.5203, 13.2769),
		makeNetworkStation(113, "Munich central bus station", "", "Muenchen ZOB, Munich Hackerbruecke", 48.1423, 11.5504),
		makeNetworkStation(740, "Frankfurt Hbf", "", "Frankfurt am Main", 50.1072, 8.6647),
	})
	defer srv.Close()

	directory := newTestDirectory(t, srv.URL)

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantFirst string
	}{
		{
			name:      "case-insensitive alias match",
			query:     "berlin",
			wantCount: 1,
			wantFirst: "88",
		},
		{
			name:      "matches inside the alias blob",
			query:     "hackerbruecke",
			wantCount: 1,
			wantFirst: "113",
		},
		{
			name:      "no match",
			query:     "hamburg",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := directory.Suggest(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Len(t, got, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, got[0].ID)
			}
		})
	}
}

func TestDirectoryFindNearest(t *testing.T) {
	srv := newNetworkServer(t, []networkStation{
		makeNetworkStation(88, "Berlin central bus station", "", "Berlin ZOB", 52.5203, 13.2769),
		makeNetworkStation(113, "Munich central bus station", "", "Muenchen ZOB", 48.1423, 11.5504),
		makeNetworkStation(740, "Frankfurt Hbf", "", "Frankfurt am Main", 50.1072, 8.6647),
	})
	defer srv.Close()

	directory := newTestDirectory(t, srv.URL)

	tests := []struct {
		name      string
		lat       float64
		lon       float64
		limit     int
		wantCount int
		wantFirst string // ID of the station that should be first
	}{
		{
			name:      "nearest to Berlin",
			lat:       52.52,
			lon:       13.405,
			limit:     2,
			wantCount: 2,
			wantFirst: "88",
		},
		{
			name:      "nearest to Munich",
			lat:       48.1374,
			lon:       11.5755,
			limit:     1,
			wantCount: 1,
			wantFirst: "113",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := directory.FindNearest(context.Background(), tt.lat, tt.lon, tt.limit)
			require.NoError(t, err)

			assert.Len(t, got, tt.wantCount)
			if len(got) > 0 {
				assert.Equal(t, tt.wantFirst, got[0].ID)
			}

			// Verify stations are sorted by distance
			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1].Distance, got[i].Distance,
					"Stations should be sorted by distance")
			}
		})
	}
}

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		want      float64
		tolerance float64
	}{
		{
			name:      "Berlin to Munich",
			lat1:      52.5203,
			lon1:      13.2769,
			lat2:      48.1423,
			lon2:      11.5504,
			want:      502.0, // km
			tolerance: 5.0,
		},
		{
			name:      "Same point",
			lat1:      52.5203,
			lon1:      13.2769,
			lat2:      52.5203,
			lon2:      13.2769,
			want:      0,
			tolerance: 0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

// Helper function to create string pointers
func stringPtr(s string) *string {
	return &s
}
