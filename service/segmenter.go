package services

import (
	"trends-server/models"
)

// Maximum day-span of a single upstream query before the source degrades the
// sampling density. Daily data is rate-limited far more aggressively than
// weekly, hence the much smaller window.
const (
	MAX_SEGMENT_DAYS_DAILY  = 269
	MAX_SEGMENT_DAYS_WEEKLY = 1889
)

// DivideRange splits the requested range into an ordered sequence of
// contiguous, non-overlapping sub-ranges sized for the upstream query
// limits. Each segment after the first starts one day after the previous
// segment's end, and together they cover the range exactly.
//
// numSegments > 0 overrides the granularity lookup and divides the day-span
// into that many approximately equal pieces; remainder days are absorbed by
// the final segment. An unrecognized granularity returns the whole range as
// a single segment.
func DivideRange(rng models.DateRange, granularity string, numSegments int) []models.DateRange {
	if rng.Start.Equal(rng.End) {
		return []models.DateRange{rng}
	}

	var deltaDays int
	switch {
	case numSegments > 0:
		deltaDays = rng.Days() / numSegments
		if deltaDays < 1 {
			// More segments requested than days available; fall back to
			// one-day pieces so the cover stays exact.
			deltaDays = 1
		}
	case granularity == "d":
		deltaDays = MAX_SEGMENT_DAYS_DAILY
	case granularity == "w":
		deltaDays = MAX_SEGMENT_DAYS_WEEKLY
	default:
		return []models.DateRange{rng}
	}

	var segments []models.DateRange
	current := rng.Start
	for current.Before(rng.End) {
		end := current.AddDate(0, 0, deltaDays)
		if end.After(rng.End) {
			end = rng.End
		}
		segments = append(segments, models.DateRange{Start: current, End: end})
		current = end.AddDate(0, 0, 1) // Next segment starts the day after this one ends
	}

	return segments
}
