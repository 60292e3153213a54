package station

import (
	"context"

	"github.com/bbernstein/flixgo/internal/models"
)

// Finder defines the interface for resolving stations
type Finder interface {
	Resolve(ctx context.Context, stationID string) (*models.Location, error)
	Suggest(ctx context.Context, query string) ([]models.Location, error)
	FindNearest(ctx context.Context, lat, lon float64, limit int) ([]models.Location, error)
}
