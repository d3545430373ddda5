package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"trends-server/api/trends"
	"trends-server/models"
)

// TrendsService runs the fetch-and-stitch pipeline: divide the requested
// range into upstream-sized segments, fetch each one, rescale segment edges
// to cancel the per-request normalization, and concatenate the result.
type TrendsService struct {
	trendsAPI trends.TrendsAPI
	pacer     Pacer
}

// NewTrendsService constructs a new TrendsService with its dependencies.
func NewTrendsService(trendsAPI trends.TrendsAPI, pacer Pacer) *TrendsService {
	return &TrendsService{
		trendsAPI: trendsAPI,
		pacer:     pacer,
	}
}

// segmentSeries holds one segment's fetched data: a shared date index and
// one value column per requested keyword, all columns aligned to the index.
type segmentSeries struct {
	dates  []time.Time
	values map[string][]float64
}

// GetTrends fetches and stitches the interest series for one query. The
// returned granularity label is empty when it cannot be inferred (fewer
// than two datapoints). An upstream failure aborts the whole run; no
// partial series is returned.
func (ts *TrendsService) GetTrends(ctx context.Context, query models.TrendsQuery) (models.CombinedSeries, models.Granularity, error) {
	segments := DivideRange(query.Range, query.Granularity, query.NumSegments)
	log.Printf("[TrendsService] Number of segments: %d", len(segments))

	category := trends.CategoryCode(query.YouTube)

	// Fetch every segment in order, one blocking request at a time. The
	// rescale below needs each segment's right neighbor, so order matters.
	raw := make([]*segmentSeries, 0, len(segments))
	for i, segment := range segments {
		response, err := ts.trendsAPI.InterestOverTime(ctx, query.Keywords, segment, query.Geo, category)
		if err != nil {
			return nil, "", fmt.Errorf("fetch segment %s: %w", segment, err)
		}

		data, err := buildSegmentSeries(response, query.Keywords)
		if err != nil {
			return nil, "", fmt.Errorf("segment %s: %w", segment, err)
		}
		raw = append(raw, data)

		if i < len(segments)-1 {
			ts.pacer.Pace(len(segments))
		}
	}

	rescaled := rescaleSegments(raw, query.Keywords)
	combined := concatSegments(rescaled, query.Keywords)

	granularity, err := InferGranularity(combined)
	if err != nil {
		log.Printf("[TrendsService] Could not infer granularity: %v", err)
		granularity = ""
	} else {
		log.Printf("[TrendsService] Overall granularity: %s", granularity)
	}

	ts.reportCoverage(query.Range, combined)
	return combined, granularity, nil
}

// buildSegmentSeries converts an upstream response into aligned per-keyword
// columns. A keyword the source returned no data for is back-filled with
// zeros over the segment's timestamps rather than failing.
func buildSegmentSeries(response *models.InterestOverTimeResponse, keywords []string) (*segmentSeries, error) {
	data := &segmentSeries{
		dates:  make([]time.Time, 0, len(response.Rows)),
		values: make(map[string][]float64, len(keywords)),
	}
	for _, keyword := range keywords {
		data.values[keyword] = make([]float64, 0, len(response.Rows))
	}

	for _, row := range response.Rows {
		date, err := models.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("malformed row date %q: %w", row.Date, err)
		}
		data.dates = append(data.dates, date)
		for _, keyword := range keywords {
			// Missing keyword -> zero. row.Values lookups default to 0.
			data.values[keyword] = append(data.values[keyword], row.Values[keyword])
		}
	}
	return data, nil
}

// rescaleSegments cancels the per-request normalization by boundary
// matching: every segment except the last is multiplied so its right-edge
// value meets its right neighbor's left-edge value.
//
// Each boundary is processed exactly once, left to right, and both edge
// values are read from the RAW fetched data: corrections do not cascade
// beyond the immediate neighbor. The raw input is never mutated; rescale
// produces fresh columns.
func rescaleSegments(raw []*segmentSeries, keywords []string) []*segmentSeries {
	rescaled := make([]*segmentSeries, len(raw))
	for i, segment := range raw {
		out := &segmentSeries{
			dates:  segment.dates,
			values: make(map[string][]float64, len(keywords)),
		}
		for _, keyword := range keywords {
			column := make([]float64, len(segment.values[keyword]))
			copy(column, segment.values[keyword])
			out.values[keyword] = column
		}
		rescaled[i] = out
	}

	for i := 1; i < len(raw); i++ {
		for _, keyword := range keywords {
			// An empty series contributes no edge value: the missing
			// head or tail is treated as 0.
			head := 0.0
			if column := raw[i].values[keyword]; len(column) > 0 {
				head = column[0]
			}
			tail := 0.0
			if column := raw[i-1].values[keyword]; len(column) > 0 {
				tail = column[len(column)-1]
			}

			scale := 1.0
			if tail != 0 {
				scale = head / tail
			}

			previous := rescaled[i-1].values[keyword]
			for j := range previous {
				previous[j] *= scale
			}
		}
	}

	return rescaled
}

// concatSegments joins the per-segment columns into one timestamp-ordered
// combined series. Segment timestamps are assumed disjoint-but-adjoining;
// a duplicated boundary date from the upstream is kept twice.
func concatSegments(segments []*segmentSeries, keywords []string) models.CombinedSeries {
	var combined models.CombinedSeries
	for _, segment := range segments {
		for j, date := range segment.dates {
			values := make(map[string]float64, len(keywords))
			for _, keyword := range keywords {
				values[keyword] = segment.values[keyword][j]
			}
			combined = append(combined, models.TrendPoint{Date: date, Values: values})
		}
	}
	return combined
}

// reportCoverage logs the date-range coverage summary for the run.
func (ts *TrendsService) reportCoverage(requested models.DateRange, combined models.CombinedSeries) {
	log.Printf("[TrendsService] Days in timeframe: %d", requested.Days())
	if len(combined) == 0 {
		log.Printf("[TrendsService] No datapoints returned for %s", requested)
		return
	}
	log.Printf("[TrendsService] Data start date: %s", combined[0].Date.Format(models.DateLayout))
	log.Printf("[TrendsService] Data end date: %s", combined[len(combined)-1].Date.Format(models.DateLayout))
}
