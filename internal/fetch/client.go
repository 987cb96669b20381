package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultUserAgent = "missionctl/0.1"
	requestTimeout   = 15 * time.Second
)

// Client performs JSON requests against third-party APIs.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLimiter gates every request on limiter. A request that would have to
// wait fails immediately with ErrRateLimited.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) { c.limiter = limiter }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client with the default timeout and User-Agent.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithQuery returns rawURL with key=value set in its query string.
func WithQuery(rawURL string, key string, value int) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	values := u.Query()
	values.Set(key, strconv.Itoa(value))
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// GetJSON issues a GET and decodes the response into dest.
func (c *Client) GetJSON(ctx context.Context, rawURL string, dest any) error {
	return c.do(ctx, http.MethodGet, rawURL, nil, dest)
}

// PostJSON encodes body, POSTs it and decodes the response into dest.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, rawURL, bytes.NewReader(payload), dest)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if c.limiter != nil && !c.limiter.Allow() {
		return fmt.Errorf("%s %s: %w", method, rawURL, ErrRateLimited)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d: %w", req.URL.Path, resp.StatusCode, ErrStatus)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
