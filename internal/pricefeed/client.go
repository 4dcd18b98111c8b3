package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Quote is a single entry from the upstream prices endpoint.
type Quote struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
}

// Client fetches current token prices from the prices endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	delay      time.Duration
	maxRetries int
}

// NewClient creates a new prices endpoint client.
func NewClient(url string, delay time.Duration, maxRetries int) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		delay:      delay,
		maxRetries: maxRetries,
	}
}

// FetchQuotes fetches the full list of price quotes. The list may
// contain duplicate currencies; callers deduplicate with later entries
// overwriting earlier ones.
func (c *Client) FetchQuotes(ctx context.Context) ([]Quote, error) {
	body, err := c.fetchWithRetry(ctx, c.url)
	if err != nil {
		return nil, err
	}

	// Parse: [{"currency":"ETH","date":"...","price":2000},...]
	var quotes []Quote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return nil, fmt.Errorf("parsing prices response: %w", err)
	}

	return quotes, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := range c.maxRetries + 1 {
		if attempt > 0 {
			baseDelay := c.delay
			if baseDelay == 0 {
				baseDelay = time.Second
			}
			delay := baseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating prices request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("prices request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading prices response: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("prices endpoint rate limited (attempt %d/%d)", attempt+1, c.maxRetries+1)
			continue
		}

		return nil, fmt.Errorf("prices endpoint HTTP %d: %s", resp.StatusCode, string(body))
	}

	return nil, lastErr
}
