package trips

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bbernstein/flixgo/internal/models"
	"github.com/bbernstein/flixgo/pkg/http/client"
)

const defaultOperatorTimeZone = "Europe/Berlin"

// TripsResult is the outcome of one search or continuation: the accepted
// trips, the fresh pagination context for the next page, and any
// per-itinerary anomalies that were skipped along the way.
type TripsResult struct {
	Trips     []models.Trip
	Context   TripsContext
	Anomalies []error
}

// searchQuery is one resolved page request. before, when set, is the
// exclusive upper bound on trip arrivals used by backward paging.
type searchQuery struct {
	from   models.Location
	to     models.Location
	anchor time.Time
	before *time.Time
}

type Service struct {
	httpClient    *client.Client
	resolver      LocationResolver
	operatorZone  *time.Location
	forwardPaging bool
}

type Option func(*Service)

// WithOperatorTimeZone overrides the operator's civil timezone
func WithOperatorTimeZone(loc *time.Location) Option {
	return func(s *Service) {
		s.operatorZone = loc
	}
}

// WithForwardPaging enables the forward cursor for upstream endpoints that
// support it. The stock search endpoint is date-granular and does not.
func WithForwardPaging(enabled bool) Option {
	return func(s *Service) {
		s.forwardPaging = enabled
	}
}

func NewService(httpClient *client.Client, resolver LocationResolver, opts ...Option) *Service {
	s := &Service{
		httpClient:   httpClient,
		resolver:     resolver,
		operatorZone: loadOperatorZone(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func loadOperatorZone() *time.Location {
	zone, err := time.LoadLocation(defaultOperatorTimeZone)
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC for operator timezone")
		return time.UTC
	}
	return zone
}

// SearchTrips runs a fresh trip search from one station to another,
// anchored at the given instant. Trips departing before the anchor are
// excluded but remain reachable through ContinueEarlier.
func (s *Service) SearchTrips(ctx context.Context, from, to models.Location, when time.Time) (*TripsResult, error) {
	return s.search(ctx, searchQuery{from: from, to: to, anchor: when})
}

// ContinueLater requests the page after the one that produced tc. It fails
// with ErrNoLaterResults when the context carries no forward cursor.
func (s *Service) ContinueLater(ctx context.Context, tc TripsContext) (*TripsResult, error) {
	if !tc.CanQueryLater || tc.LastDeparture == nil {
		return nil, ErrNoLaterResults
	}

	// Anchor strictly after the latest departure already seen; the strict
	// before-anchor filter then guarantees no duplicate and no gap.
	anchor := tc.LastDeparture.Add(time.Second)
	return s.search(ctx, searchQuery{from: tc.From, to: tc.To, anchor: anchor})
}

// ContinueEarlier requests trips before the page that produced tc. It
// re-anchors at operator-local civil midnight of the anchor day, so
// same-day itineraries excluded by the original anchor filter become
// reachable; trips arriving at or after the earliest arrival already seen
// are suppressed.
func (s *Service) ContinueEarlier(ctx context.Context, tc TripsContext) (*TripsResult, error) {
	anchor := StartOfDay(tc.Anchor, s.operatorZone)
	return s.search(ctx, searchQuery{
		from:   tc.From,
		to:     tc.To,
		anchor: anchor,
		before: tc.FirstArrival,
	})
}

func (s *Service) search(ctx context.Context, q searchQuery) (*TripsResult, error) {
	path := s.buildSearchPath(q)

	log.Debug().
		Str("from", q.from.ID).
		Str("to", q.to.ID).
		Time("anchor", q.anchor).
		Msg("Searching trips")

	resp, err := s.httpClient.Get(ctx, path)
	if err != nil {
		return nil, NewUpstreamError("fetching trips", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewUpstreamError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	return s.parseSearchResponse(ctx, resp.Body, q)
}

func (s *Service) buildSearchPath(q searchQuery) string {
	params := url.Values{}
	params.Set("adult", "1")
	params.Set("back", "0")
	params.Set("bikes", "0")
	params.Set("children", "0")
	params.Set("currency", "EUR")
	params.Set("return_date", "")
	params.Set("departure_date", EncodeSearchDate(q.anchor, s.operatorZone))
	params.Set("from", q.from.ID)
	params.Set("to", q.to.ID)

	return "/trip/search.json?" + params.Encode()
}
