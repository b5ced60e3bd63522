// Package finnhub is a minimal client for the two Finnhub endpoints this
// system reads: corporate actions and company profiles.
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"buyback-detector/internal/models"
	"buyback-detector/pkg/utils"
)

const (
	// DefaultBaseURL is the production Finnhub API root.
	DefaultBaseURL = "https://finnhub.io/api/v1"

	// requestInterval paces outgoing requests to stay inside the free-tier
	// rate limit.
	requestInterval = 600 * time.Millisecond

	userAgent = "buyback-detector/1.0"
)

// Config holds client configuration.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to DefaultBaseURL
	Timeout time.Duration // per-request; defaults to 15s
}

// Client fetches corporate actions and company profiles. All calls are
// paced through a shared rate limiter, so sequential per-ticker loops
// respect the upstream limit without explicit sleeps.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	retry   utils.RetryConfig
}

// NewClient creates a Finnhub client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
		retry:   utils.DefaultRetryConfig(),
	}
}

// CorporateActions fetches corporate-action records for symbol within
// [from, to] (ISO dates). Non-2xx responses are errors; transient
// failures are retried with backoff before giving up.
func (c *Client) CorporateActions(ctx context.Context, symbol, from, to string) ([]models.CorporateAction, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("from", from)
	params.Set("to", to)

	var actions []models.CorporateAction
	err := utils.Retry(ctx, c.retry, func() error {
		body, err := c.get(ctx, "/corporate-actions", params)
		if err != nil {
			return err
		}
		actions = nil
		return json.Unmarshal(body, &actions)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching corporate actions for %s: %w", symbol, err)
	}

	return actions, nil
}

// CompanyProfile fetches the company profile for symbol. Any failure
// degrades to an empty profile instead of propagating: a missing profile
// only costs the percent-of-market-cap figure, never the run.
func (c *Client) CompanyProfile(ctx context.Context, symbol string) models.CompanyProfile {
	params := url.Values{}
	params.Set("symbol", symbol)

	body, err := c.get(ctx, "/stock/profile2", params)
	if err != nil {
		return models.CompanyProfile{}
	}

	var profile models.CompanyProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return models.CompanyProfile{}
	}

	return profile
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params.Set("token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	return body, nil
}
