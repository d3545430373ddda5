package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used everywhere: inbound
// parameters, upstream timeframes and series timestamps.
const DateLayout = "2006-01-02"

// DateRange is a pair of calendar dates, Start <= End, inclusive on both
// ends. Immutable once constructed.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDate parses a 'YYYY-MM-DD' calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDateRange parses a start/end date pair. Malformed dates surface as
// parse errors here, at the point of first use.
func ParseDateRange(start, end string) (DateRange, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if endDate.Before(startDate) {
		return DateRange{}, fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return DateRange{Start: startDate, End: endDate}, nil
}

// Days returns the day-span between Start and End. A degenerate range
// (Start == End) spans zero days.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

// String renders the range as the upstream timeframe format
// "YYYY-MM-DD YYYY-MM-DD".
func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " " + r.End.Format(DateLayout)
}
