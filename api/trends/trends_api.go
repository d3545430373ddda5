package trends

import (
	"context"

	"trends-server/models"
)

// Upstream category codes. The source exposes video-platform search as its
// own category next to general web search.
const (
	CATEGORY_WEB     = "0"
	CATEGORY_YOUTUBE = "29"
)

// TrendsAPI defines the interface for querying the external trends source.
// One call covers ALL keywords of a request at once: scores are normalized
// jointly across the keyword set and date range of that call, so batching
// cannot be emulated by independent per-keyword calls.
type TrendsAPI interface {
	InterestOverTime(ctx context.Context, keywords []string, timeframe models.DateRange, geo string, category string) (*models.InterestOverTimeResponse, error)
}

// CategoryCode maps the inbound youtube flag to the upstream category code.
func CategoryCode(youtube bool) string {
	if youtube {
		return CATEGORY_YOUTUBE
	}
	return CATEGORY_WEB
}
