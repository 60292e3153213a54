package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/bbernstein/flixgo/internal/models"
)

// parseSearchResponse walks the raw search document, stitches every
// itinerary record and applies the paging window. Per-record problems are
// collected as anomalies; only an undecodable document aborts the call.
func (s *Service) parseSearchResponse(ctx context.Context, body []byte, q searchQuery) (*TripsResult, error) {
	var doc searchDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &MalformedResponseError{Message: "decoding search response", Err: err}
	}

	result := &TripsResult{
		Context: TripsContext{From: q.from, To: q.to, Anchor: q.anchor},
	}

	if len(doc.Trips) == 0 {
		// No itineraries on the requested date. Valid outcome.
		return result, nil
	}
	if len(doc.Trips) > 1 {
		// The API documents exactly one grouping per station pair. Process
		// all of them anyway rather than silently using the first.
		log.Warn().
			Int("groupings", len(doc.Trips)).
			Str("from", q.from.ID).
			Str("to", q.to.ID).
			Msg("Search returned more than one itinerary grouping")
		result.Anomalies = append(result.Anomalies,
			fmt.Errorf("expected one itinerary grouping, got %d", len(doc.Trips)))
	}

	for _, grouping := range doc.Trips {
		for _, item := range grouping.Items {
			departure := DecodeEventTimestamp(item.Departure.Timestamp)
			if departure.Before(q.anchor) {
				// An earlier same-day itinerary stays reachable through a
				// follow-up earlier query.
				result.Context.CanQueryEarlier = true
				continue
			}

			if q.before != nil {
				arrival := DecodeEventTimestamp(item.Arrival.Timestamp)
				if !arrival.Before(*q.before) {
					// Already covered by a prior page.
					continue
				}
			}

			legs, err := s.stitchLegs(ctx, item, q.from, q.to)
			if err != nil {
				var malformed *MalformedItineraryError
				if errors.As(err, &malformed) {
					log.Warn().Err(err).Str("uid", item.UID).Msg("Skipping malformed itinerary")
					result.Anomalies = append(result.Anomalies, err)
					continue
				}
				return nil, err
			}

			trip := models.Trip{UID: item.UID, From: q.from, To: q.to, Legs: legs}
			result.Trips = append(result.Trips, trip)
			result.Context = result.Context.fold(trip)
		}
	}

	// The upstream search is date-granular and ships the whole day at once;
	// a forward cursor only exists when explicitly enabled.
	result.Context.CanQueryLater = s.forwardPaging && result.Context.LastDeparture != nil

	return result, nil
}
