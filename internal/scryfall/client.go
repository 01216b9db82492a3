package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.scryfall.com"
	rateLimitDelay = 100 * time.Millisecond // Scryfall asks for 50-100ms between requests
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 16 * time.Second
)

// Client is a Scryfall API client with rate limiting and retries.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
}

// NewClient creates a Scryfall client with the production base URL.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent:   "mtgmgr/1.0",
	}
}

// NamedCard looks a card up by name. With fuzzy set, misspellings and
// partial names resolve to the closest match; otherwise the name must
// match exactly (ignoring case and punctuation, per the API).
func (c *Client) NamedCard(ctx context.Context, name string, fuzzy bool) (*Card, error) {
	mode := "exact"
	if fuzzy {
		mode = "fuzzy"
	}
	u := fmt.Sprintf("%s/cards/named?%s=%s", c.baseURL, mode, url.QueryEscape(name))

	var card Card
	if err := c.doRequest(ctx, u, &card); err != nil {
		return nil, fmt.Errorf("get card %q: %w", name, err)
	}
	return &card, nil
}

// RandomCard fetches a random card, optionally filtered by a search query.
func (c *Client) RandomCard(ctx context.Context, query string) (*Card, error) {
	u := c.baseURL + "/cards/random"
	if query != "" {
		u += "?q=" + url.QueryEscape(query)
	}

	var card Card
	if err := c.doRequest(ctx, u, &card); err != nil {
		return nil, fmt.Errorf("get random card: %w", err)
	}
	return &card, nil
}

// Search performs a full-text card search using Scryfall query syntax.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	u := fmt.Sprintf("%s/cards/search?q=%s", c.baseURL, url.QueryEscape(query))

	var result SearchResult
	if err := c.doRequest(ctx, u, &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return &result, nil
}

// doRequest performs a GET with rate limiting and retry on transient
// failures (network errors and 429s).
func (c *Client) doRequest(ctx context.Context, u string, result interface{}) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("http request: %w", err)
			if attempt < maxRetries {
				time.Sleep(backoff)
				backoff = minDuration(backoff*2, maxBackoff)
				continue
			}
			return lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("read response: %w", readErr)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			return nil

		case http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited (HTTP 429)")
			if attempt < maxRetries {
				time.Sleep(backoff)
				backoff = minDuration(backoff*2, maxBackoff)
				continue
			}
			return lastErr

		case http.StatusNotFound:
			return &NotFoundError{URL: u}

		default:
			var apiErr APIError
			if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Details != "" {
				return &apiErr
			}
			return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
