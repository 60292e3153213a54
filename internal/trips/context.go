package trips

import (
	"time"

	"github.com/bbernstein/flixgo/internal/models"
)

// TripsContext carries pagination state between a search and its
// continuations. It is a value: every call returns a fresh context and the
// caller threads it explicitly. One context belongs to exactly one logical
// pagination session and must not be shared between concurrent searches.
type TripsContext struct {
	From   models.Location
	To     models.Location
	Anchor time.Time

	CanQueryEarlier bool
	CanQueryLater   bool

	// LastDeparture is the latest departure among trips returned so far,
	// FirstArrival the earliest arrival. Nil until a trip is accepted.
	LastDeparture *time.Time
	FirstArrival  *time.Time
}

// fold widens the known time window with one accepted trip's boundary
// timestamps and returns the updated context.
func (tc TripsContext) fold(trip models.Trip) TripsContext {
	departure := trip.Departure()
	arrival := trip.Arrival()

	if tc.LastDeparture == nil || departure.After(*tc.LastDeparture) {
		tc.LastDeparture = &departure
	}
	if tc.FirstArrival == nil || arrival.Before(*tc.FirstArrival) {
		tc.FirstArrival = &arrival
	}
	return tc
}
