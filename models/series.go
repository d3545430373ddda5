package models

import (
	"encoding/json"
	"time"
)

// TrendPoint is one timestamped row of a combined series: one interest
// value per requested keyword.
type TrendPoint struct {
	Date   time.Time
	Values map[string]float64
}

// MarshalJSON emits the date as a plain 'YYYY-MM-DD' string.
func (p TrendPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date   string             `json:"date"`
		Values map[string]float64 `json:"values"`
	}{
		Date:   p.Date.Format(DateLayout),
		Values: p.Values,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *TrendPoint) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date   string             `json:"date"`
		Values map[string]float64 `json:"values"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := ParseDate(aux.Date)
	if err != nil {
		return err
	}
	p.Date = date
	p.Values = aux.Values
	return nil
}

// SeriesPoint is one timestamped value of a single derived series, such as
// the interest ratio between two keywords.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// CombinedSeries is the concatenation, in segment order, of all rescaled
// per-segment series. Consumers (charts, CSV, handlers) treat it as
// read-only. If the upstream source returns an overlapping boundary date in
// two adjacent segments, both rows are retained.
type CombinedSeries []TrendPoint

// Column returns the values of one keyword in timestamp order.
func (s CombinedSeries) Column(keyword string) []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Values[keyword]
	}
	return values
}

// Ratio returns the pointwise ratio of keyword1 over keyword2. A zero
// denominator yields +Inf (or NaN for 0/0); the value is kept as-is and
// left to the presentation layer.
func (s CombinedSeries) Ratio(keyword1, keyword2 string) []SeriesPoint {
	ratio := make([]SeriesPoint, len(s))
	for i, p := range s {
		ratio[i] = SeriesPoint{Date: p.Date, Value: p.Values[keyword1] / p.Values[keyword2]}
	}
	return ratio
}
