package trends

import (
	"context"
	"net/url"
	"strings"

	"trends-server/api"
	"trends-server/models"

	"github.com/sony/gobreaker"
)

const INTEREST_OVER_TIME_ENDPOINT = "/interest/overtime"

// TrendsApiClient embeds the common HTTPClient and wraps calls in a circuit
// breaker so a misbehaving upstream is not hammered by repeated runs. The
// breaker never retries: a failed call still fails the run.
type TrendsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	breaker         *gobreaker.CircuitBreaker
}

// NewTrendsApiClient creates a new instance of TrendsApiClient
func NewTrendsApiClient(httpClient *api.HTTPClient) *TrendsApiClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "trends-api",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &TrendsApiClient{
		HTTPClient: httpClient,
		breaker:    breaker,
	}
}

// InterestOverTime queries the upstream source for all keywords at once over
// a single timeframe and decodes the timestamped interest table.
func (c *TrendsApiClient) InterestOverTime(ctx context.Context, keywords []string, timeframe models.DateRange, geo string, category string) (*models.InterestOverTimeResponse, error) {
	query := url.Values{}
	query.Set("keywords", strings.Join(keywords, ","))
	query.Set("timeframe", timeframe.String())
	query.Set("cat", category)
	if geo != "" {
		query.Set("geo", geo)
	}

	var response models.InterestOverTimeResponse
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.Get(ctx, INTEREST_OVER_TIME_ENDPOINT, query, &response)
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
