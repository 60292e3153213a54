package models

import (
	"errors"
	"fmt"
	"time"
)

type Product string

const (
	ProductBus Product = "BUS"
)

// Line identifies the carrier operating a leg.
type Line struct {
	Label   string  `json:"label"`
	Product Product `json:"product"`
	Color   string  `json:"color,omitempty"`
}

// FlixbusLine is the single line the upstream network operates.
var FlixbusLine = Line{
	Label:   "FLIX",
	Product: ProductBus,
	Color:   "#73D700",
}

// Stop is one boarding or alighting event at a station.
type Stop struct {
	Location  Location  `json:"location"`
	Departure bool      `json:"departure"`
	Time      time.Time `json:"time"`
}

// Leg is one uninterrupted ride. Boarding.Departure is always true,
// Alighting.Departure always false, and Boarding.Time precedes
// Alighting.Time.
type Leg struct {
	Line      Line `json:"line"`
	Boarding  Stop `json:"boarding"`
	Alighting Stop `json:"alighting"`
}

// Trip is one candidate way to travel from From to To, as a non-empty
// ordered chain of legs joined at transfer stations.
type Trip struct {
	UID  string   `json:"uid"`
	From Location `json:"from"`
	To   Location `json:"to"`
	Legs []Leg    `json:"legs"`
}

// Validate checks the structural invariants of a trip: legs alternate
// boarding/alighting stops in time order, the chain starts at From and ends
// at To, and no leg boards before the previous one alights.
func (t Trip) Validate() error {
	if len(t.Legs) == 0 {
		return errors.New("trip has no legs")
	}

	for i, leg := range t.Legs {
		if !leg.Boarding.Departure {
			return fmt.Errorf("leg %d: boarding stop is not a departure", i)
		}
		if leg.Alighting.Departure {
			return fmt.Errorf("leg %d: alighting stop is not an arrival", i)
		}
		if !leg.Boarding.Time.Before(leg.Alighting.Time) {
			return fmt.Errorf("leg %d: boarding at %v does not precede alighting at %v",
				i, leg.Boarding.Time, leg.Alighting.Time)
		}
		if i > 0 && t.Legs[i-1].Alighting.Time.After(leg.Boarding.Time) {
			return fmt.Errorf("leg %d boards before leg %d alights", i, i-1)
		}
	}

	if t.Legs[0].Boarding.Location.ID != t.From.ID {
		return fmt.Errorf("first leg boards at %s, not at origin %s",
			t.Legs[0].Boarding.Location.ID, t.From.ID)
	}
	if t.Legs[len(t.Legs)-1].Alighting.Location.ID != t.To.ID {
		return fmt.Errorf("last leg alights at %s, not at destination %s",
			t.Legs[len(t.Legs)-1].Alighting.Location.ID, t.To.ID)
	}

	return nil
}

// Departure returns the boarding time of the first leg.
func (t Trip) Departure() time.Time {
	return t.Legs[0].Boarding.Time
}

// Arrival returns the alighting time of the last leg.
func (t Trip) Arrival() time.Time {
	return t.Legs[len(t.Legs)-1].Alighting.Time
}

// Transfers returns the number of intermediate station changes.
func (t Trip) Transfers() int {
	return len(t.Legs) - 1
}
