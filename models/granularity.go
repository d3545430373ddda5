package models

// Granularity classifies the sampling density of a fetched series, inferred
// from the gaps between its timestamps. Empty when indeterminate.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)
