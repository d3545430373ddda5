package services

import (
	"errors"
	"time"

	"trends-server/models"
)

// ErrIndeterminateGranularity is returned when a series has fewer than two
// timestamps, so no gap between datapoints can be computed.
var ErrIndeterminateGranularity = errors.New("indeterminate granularity: series has fewer than two timestamps")

// InferGranularity classifies the actual sampling density of a fetched
// series from the gaps between consecutive timestamps: the most frequent
// gap decides. One day means daily data, up to a week weekly, anything
// coarser monthly.
func InferGranularity(series models.CombinedSeries) (models.Granularity, error) {
	if len(series) < 2 {
		return "", ErrIndeterminateGranularity
	}

	gapCounts := make(map[int]int)
	for i := 1; i < len(series); i++ {
		gap := int(series[i].Date.Sub(series[i-1].Date) / (24 * time.Hour))
		gapCounts[gap]++
	}

	// Most frequent gap; ties resolve to the smaller gap.
	commonGap := 0
	commonCount := 0
	for gap, count := range gapCounts {
		if count > commonCount || (count == commonCount && gap < commonGap) {
			commonGap = gap
			commonCount = count
		}
	}

	switch {
	case commonGap == 1:
		return models.GranularityDaily, nil
	case commonGap <= 7:
		return models.GranularityWeekly, nil
	default:
		return models.GranularityMonthly, nil
	}
}
