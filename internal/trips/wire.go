package trips

// Raw shapes of the upstream trip search document.

type wireTimestamp struct {
	Timestamp int64 `json:"timestamp"`
}

type wireTransfer struct {
	StationID int64         `json:"station_id"`
	Arrival   wireTimestamp `json:"arrival"`
	Departure wireTimestamp `json:"departure"`
}

type wireItem struct {
	UID       string         `json:"uid"`
	Type      string         `json:"type"`
	Departure wireTimestamp  `json:"departure"`
	Arrival   wireTimestamp  `json:"arrival"`
	Transfers []wireTransfer `json:"interconnection_transfers"`
}

// wireGrouping is one itinerary grouping for an origin/destination pair.
// The API documents exactly one per search.
type wireGrouping struct {
	Items []wireItem `json:"items"`
}

type searchDocument struct {
	Trips []wireGrouping `json:"trips"`
}
