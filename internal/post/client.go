package post

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"postcard/internal/config"
	"postcard/internal/debuglog"
)

// Client fetches the post collection from the configured endpoint.
// The whole collection comes back in one request; there is no paging,
// conditional fetching, or retrying at this layer.
type Client struct {
	url       string
	userAgent string
	client    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.API.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:       cfg.API.URL,
		userAgent: cfg.API.UserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Fetch performs the session's single GET and decodes the JSON array.
// Any transport, status, or decode problem is returned as one wrapped
// error; the caller surfaces the message and nothing else.
func (c *Client) Fetch(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching posts: HTTP %d", resp.StatusCode)
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decoding posts: %w", err)
	}

	debuglog.Infof("fetched %d posts from %s", len(posts), c.url)
	return posts, nil
}
