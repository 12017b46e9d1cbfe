package config

import (
	"fmt"
	"time"
)

// maxRangeDays is the widest time_slot window the activities endpoint accepts.
const maxRangeDays = 7

// Range is the UTC activity window passed to the activities endpoint.
type Range struct {
	Start time.Time
	Stop  time.Time
}

// ParseRange resolves --start/--stop values. Empty values default to the
// trailing seven full UTC days ending at today 00:00 UTC. Explicit values
// accept YYYY-MM-DD or RFC3339 and must satisfy start < stop within the
// provider's seven-day maximum.
func ParseRange(startStr, stopStr string, now time.Time) (Range, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	r := Range{
		Start: today.AddDate(0, 0, -maxRangeDays),
		Stop:  today,
	}

	if startStr != "" {
		t, err := parseStamp(startStr)
		if err != nil {
			return Range{}, err
		}
		r.Start = t
	}
	if stopStr != "" {
		t, err := parseStamp(stopStr)
		if err != nil {
			return Range{}, err
		}
		r.Stop = t
	}

	if !r.Start.Before(r.Stop) {
		return Range{}, fmt.Errorf("config: start %s is not before stop %s",
			r.Start.Format(time.RFC3339), r.Stop.Format(time.RFC3339))
	}
	if r.Stop.Sub(r.Start) > maxRangeDays*24*time.Hour {
		return Range{}, fmt.Errorf("config: range exceeds the %d-day API maximum", maxRangeDays)
	}
	return r, nil
}

func parseStamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: invalid date %q (want YYYY-MM-DD or RFC3339)", s)
	}
	return t.UTC(), nil
}
