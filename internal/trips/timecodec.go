package trips

import "time"

// EncodeSearchDate renders an instant as the civil date string the search
// endpoint expects, in the operator's local calendar. The endpoint is
// date-granular; time of day is discarded.
func EncodeSearchDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02.01.2006")
}

// DecodeEventTimestamp converts an upstream epoch-seconds timestamp to an
// instant.
func DecodeEventTimestamp(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// StartOfDay returns civil midnight of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
