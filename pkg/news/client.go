package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Item is a single news article as returned by the news gateway.
// Items are never persisted and carry no stable identifier.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ImageURL    string `json:"image_url"`
	SourceID    string `json:"source_id"`
	PubDate     string `json:"pubDate"`
}

type gatewayResponse struct {
	Results []Item `json:"results"`
}

// Client fetches news items for a search query
type Client interface {
	Fetch(ctx context.Context, query string) ([]Item, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a news client pointed at the news gateway base URL
func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch calls GET {base}/news and decodes the results array.
// A non-2xx status is a fetch failure, never an empty result.
func (c *httpClient) Fetch(ctx context.Context, query string) ([]Item, error) {
	uri := c.baseURL + "/news"
	if query != "" {
		uri += "?query=" + url.QueryEscape(query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news gateway returned status %d", resp.StatusCode)
	}

	var payload gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	return payload.Results, nil
}
