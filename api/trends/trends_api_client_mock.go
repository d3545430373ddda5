package trends

import (
	"context"
	"hash/fnv"
	"math"

	"trends-server/models"
)

// TrendsApiClientMock generates deterministic synthetic interest data so the
// rest of the system can run without the real upstream. It mimics the two
// upstream behaviours the pipeline depends on: sampling density degrades as
// the requested timeframe grows, and scores are normalized to a joint 0-100
// scale per request.
type TrendsApiClientMock struct {
}

// NewTrendsApiClientMock creates a new instance of TrendsApiClientMock
func NewTrendsApiClientMock() *TrendsApiClientMock {
	return &TrendsApiClientMock{}
}

// InterestOverTime returns a synthetic interest table for the timeframe.
func (c *TrendsApiClientMock) InterestOverTime(ctx context.Context, keywords []string, timeframe models.DateRange, geo string, category string) (*models.InterestOverTimeResponse, error) {
	stepDays := samplingStepDays(timeframe.Days())

	var rows []models.InterestRow
	for date := timeframe.Start; !date.After(timeframe.End); date = date.AddDate(0, 0, stepDays) {
		values := make(map[string]float64, len(keywords))
		dayIndex := int(date.Sub(timeframe.Start).Hours() / 24)
		for _, keyword := range keywords {
			values[keyword] = syntheticInterest(keyword, dayIndex)
		}
		rows = append(rows, models.InterestRow{
			Date:   date.Format(models.DateLayout),
			Values: values,
		})
	}

	normalizeRows(rows, keywords)
	return &models.InterestOverTimeResponse{Rows: rows}, nil
}

// samplingStepDays mirrors the upstream density tiers: daily data for short
// timeframes, weekly up to roughly five years, monthly beyond that.
func samplingStepDays(spanDays int) int {
	switch {
	case spanDays <= 269:
		return 1
	case spanDays <= 1889:
		return 7
	default:
		return 30
	}
}

// syntheticInterest is a smooth keyword-specific wave, stable across calls.
func syntheticInterest(keyword string, dayIndex int) float64 {
	h := fnv.New32a()
	h.Write([]byte(keyword))
	phase := float64(h.Sum32() % 360)
	amplitude := 25 + float64(h.Sum32()%30)

	v := 50 + amplitude*math.Sin(2*math.Pi*(float64(dayIndex)+phase)/180)
	if v < 0 {
		v = 0
	}
	return v
}

// normalizeRows rescales all values so the joint maximum across keywords and
// rows is 100, then rounds to whole scores like the upstream does.
func normalizeRows(rows []models.InterestRow, keywords []string) {
	max := 0.0
	for _, row := range rows {
		for _, keyword := range keywords {
			if row.Values[keyword] > max {
				max = row.Values[keyword]
			}
		}
	}
	if max == 0 {
		return
	}
	for _, row := range rows {
		for _, keyword := range keywords {
			row.Values[keyword] = math.Round(row.Values[keyword] / max * 100)
		}
	}
}
