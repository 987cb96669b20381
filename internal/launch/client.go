package launch

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/five82/missionctl/internal/fetch"
)

// DefaultAPIURL is the Launch Library dev endpoint for upcoming launches.
const DefaultAPIURL = "https://lldev.thespacedevs.com/2.2.0/launch/upcoming/"

// Source lists upcoming launches. *Client implements it.
type Source interface {
	Upcoming(ctx context.Context, limit int) fetch.Result[[]Launch]
}

var _ Source = (*Client)(nil)

// Client talks to the Launch Library API.
type Client struct {
	endpoint string
	http     *fetch.Client
}

// NewLimiter allows perHour requests per hour with a burst of two so the
// startup load and one early reload are never refused.
func NewLimiter(perHour int) *rate.Limiter {
	if perHour <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), 2)
}

// NewClient builds a Client for endpoint using the shared fetch client.
func NewClient(endpoint string, hc *fetch.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultAPIURL
	}
	if hc == nil {
		hc = fetch.NewClient()
	}
	return &Client{endpoint: endpoint, http: hc}
}

// Upcoming fetches up to limit launches in provider order.
func (c *Client) Upcoming(ctx context.Context, limit int) fetch.Result[[]Launch] {
	endpoint, err := fetch.WithQuery(c.endpoint, "limit", limit)
	if err != nil {
		return fetch.Fail[[]Launch](err)
	}
	var payload upcomingResponse
	if err := c.http.GetJSON(ctx, endpoint, &payload); err != nil {
		return fetch.Fail[[]Launch](err)
	}
	launches := make([]Launch, 0, len(payload.Results))
	for _, raw := range payload.Results {
		launches = append(launches, raw.toLaunch())
	}
	return fetch.OK(launches)
}
