// Package expiry interprets timeToVerify values as expiry instants.
//
// The two-stage rule is shared by every store backend so the evaluation
// cannot drift between them: a numeric string is always read as a Unix
// timestamp, never as a date.
package expiry

import (
	"math"
	"strconv"
	"time"
)

// ISO-8601 layouts accepted after the numeric stage fails. RFC3339 covers
// offsets and the trailing Z; the zone-less layouts are read in local time,
// matching how zone-less values were written.
var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant parses s as an expiry instant. Stage one treats s as Unix
// seconds (fractional allowed); stage two as an ISO-8601 datetime. Returns
// ok=false when both stages fail.
func ParseInstant(s string) (time.Time, bool) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Expired reports whether now is strictly after the instant encoded in s.
// Unparseable values never expire; deleting a record over a bad timestamp
// would be worse than keeping it.
func Expired(s string, now time.Time) bool {
	t, ok := ParseInstant(s)
	return ok && now.After(t)
}
