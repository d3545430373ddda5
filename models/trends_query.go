package models

// TrendsQuery bundles the inbound parameters of one pipeline run. It is
// threaded explicitly through the pipeline entry point; there is no shared
// global state between runs.
type TrendsQuery struct {
	Keywords    []string
	Range       DateRange
	Geo         string // region code, empty means worldwide
	YouTube     bool   // video-platform search instead of general web search
	Granularity string // "d", "w", or anything else for a single segment
	NumSegments int    // optional explicit segment count override, 0 = unset
}
