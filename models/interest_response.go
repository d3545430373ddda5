package models

// InterestRow is one timestamped row of the upstream interest-over-time
// table. Values maps keyword -> 0-100 interest score; a keyword the source
// has no data for is simply absent from the map.
type InterestRow struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// InterestOverTimeResponse is the upstream response for a single
// interest-over-time query. Scores are normalized to 0-100 jointly across
// the keyword set and date range of that query alone.
type InterestOverTimeResponse struct {
	Rows []InterestRow `json:"rows"`
}
