package trips

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bbernstein/flixgo/internal/models"
)

// segmentKind is the closed set of itinerary record shapes the upstream
// emits.
type segmentKind int

const (
	segmentDirect segmentKind = iota
	segmentInterconnection
)

func parseSegmentKind(raw string) (segmentKind, error) {
	switch raw {
	case "direct":
		return segmentDirect, nil
	case "interconnection":
		return segmentInterconnection, nil
	default:
		return 0, fmt.Errorf("unknown segment type %q", raw)
	}
}

// stitchLegs turns one itinerary record into its ordered leg chain. The
// boarding stop of leg 0 is the requested origin, the alighting stop of the
// last leg the requested destination; every transfer contributes one
// alighting and one boarding stop in between.
func (s *Service) stitchLegs(ctx context.Context, item wireItem, from, to models.Location) ([]models.Leg, error) {
	kind, err := parseSegmentKind(item.Type)
	if err != nil {
		return nil, &MalformedItineraryError{UID: item.UID, Message: "parsing segment type", Err: err}
	}

	firstStop := models.Stop{
		Location:  from,
		Departure: true,
		Time:      DecodeEventTimestamp(item.Departure.Timestamp),
	}
	lastStop := models.Stop{
		Location:  to,
		Departure: false,
		Time:      DecodeEventTimestamp(item.Arrival.Timestamp),
	}

	departures := []models.Stop{firstStop}
	var arrivals []models.Stop

	if kind == segmentInterconnection {
		for _, transfer := range item.Transfers {
			stationID := strconv.FormatInt(transfer.StationID, 10)
			location, err := s.resolver.Resolve(ctx, stationID)
			if err != nil {
				return nil, &MalformedItineraryError{
					UID:     item.UID,
					Message: fmt.Sprintf("resolving transfer station %s", stationID),
					Err:     err,
				}
			}

			arrivals = append(arrivals, models.Stop{
				Location:  *location,
				Departure: false,
				Time:      DecodeEventTimestamp(transfer.Arrival.Timestamp),
			})
			departures = append(departures, models.Stop{
				Location:  *location,
				Departure: true,
				Time:      DecodeEventTimestamp(transfer.Departure.Timestamp),
			})
		}
	}
	arrivals = append(arrivals, lastStop)

	legs := make([]models.Leg, len(departures))
	for i := range departures {
		legs[i] = models.Leg{
			Line:      models.FlixbusLine,
			Boarding:  departures[i],
			Alighting: arrivals[i],
		}
	}

	return legs, nil
}
