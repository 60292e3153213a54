package trips

import (
	"context"
	"time"

	"github.com/bbernstein/flixgo/internal/models"
)

type TripSearcher interface {
	SearchTrips(ctx context.Context, from, to models.Location, when time.Time) (*TripsResult, error)
	ContinueLater(ctx context.Context, tc TripsContext) (*TripsResult, error)
	ContinueEarlier(ctx context.Context, tc TripsContext) (*TripsResult, error)
}

// LocationResolver resolves a numeric station id to full station detail.
// The station directory implements it; the stitcher needs nothing more.
type LocationResolver interface {
	Resolve(ctx context.Context, stationID string) (*models.Location, error)
}
