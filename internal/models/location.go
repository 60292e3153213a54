package models

// Location is a resolved station: identity, display name and coordinate.
// Immutable once constructed.
type Location struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance,omitempty"`
}

// StationEntry is one row of the operator's network station list. Aliases
// is the raw alias blob the upstream ships for autocomplete matching.
type StationEntry struct {
	Location
	Aliases string `json:"aliases,omitempty"`
}
