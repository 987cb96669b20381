// Package news loads the latest spaceflight headlines and turns them into
// display cards.
package news

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/missionctl/internal/fetch"
)

const (
	// DefaultAPIURL is the Spaceflight News API article listing.
	DefaultAPIURL = "https://api.spaceflightnewsapi.net/v4/articles/"
	// DefaultLimit is how many articles one load asks for.
	DefaultLimit = 3
	// PlaceholderImage stands in for articles without an image.
	PlaceholderImage = "https://via.placeholder.com/400"
	// OfflineNotice replaces the feed when a load fails.
	OfflineNotice = "⚠ Data Uplink Offline."
	// ReadLabel labels each card's outbound link.
	ReadLabel = "Read Report →"
)

// Article is one news item.
type Article struct {
	Source   string `json:"news_site"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// Image returns the article image or the placeholder.
func (a Article) Image() string {
	if strings.TrimSpace(a.ImageURL) == "" {
		return PlaceholderImage
	}
	return a.ImageURL
}

type articleList struct {
	Count   int       `json:"count"`
	Results []Article `json:"results"`
}

// Client talks to the Spaceflight News API.
type Client struct {
	endpoint string
	http     *fetch.Client
	logger   *zap.Logger
}

// NewClient builds a Client for endpoint.
func NewClient(endpoint string, hc *fetch.Client, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultAPIURL
	}
	if hc == nil {
		hc = fetch.NewClient()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{endpoint: endpoint, http: hc, logger: logger}
}

// Latest fetches up to limit articles in provider order.
func (c *Client) Latest(ctx context.Context, limit int) fetch.Result[[]Article] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	endpoint, err := fetch.WithQuery(c.endpoint, "limit", limit)
	if err != nil {
		return fetch.Fail[[]Article](err)
	}
	var payload articleList
	if err := c.http.GetJSON(ctx, endpoint, &payload); err != nil {
		result := fetch.Fail[[]Article](err)
		c.logger.Warn("news load failed", zap.Stringer("kind", result.Kind), zap.Error(err))
		return result
	}
	if payload.Results == nil {
		c.logger.Warn("news payload missing results")
		return fetch.Empty[[]Article]("payload has no results field")
	}
	articles := payload.Results
	if len(articles) > limit {
		articles = articles[:limit]
	}
	c.logger.Debug("news loaded", zap.Int("articles", len(articles)))
	return fetch.OK(articles)
}
