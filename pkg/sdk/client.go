package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the smartpills SDK entry point.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// SmartPillsOption tunes a SmartPills call.
type SmartPillsOption func(url.Values)

// WithThreshold overrides the server's minimum hit count before sampling.
func WithThreshold(n int) SmartPillsOption {
	return func(v url.Values) {
		v.Set("threshold", strconv.Itoa(n))
	}
}

// SmartPills fetches filter suggestions for a query. The empty query
// returns the server's default catalogue.
func (c *Client) SmartPills(ctx context.Context, query string, opts ...SmartPillsOption) (PillsResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	for _, o := range opts {
		o(params)
	}

	var resp PillsResponse
	err := c.do(ctx, http.MethodGet, "/api/smart-pills?"+params.Encode(), nil, &resp)
	return resp, err
}

// PopularQueries fetches the static popular-queries catalogue.
func (c *Client) PopularQueries(ctx context.Context) ([]PopularQuery, error) {
	var resp struct {
		Queries []PopularQuery `json:"queries"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/popular-queries", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Queries, nil
}

// Health fetches the server health report. A degraded server still
// returns a report alongside ErrUnavailable.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}

// CreateSavedSearch registers a saved search for later update checks.
func (c *Client) CreateSavedSearch(ctx context.Context, query string) (SavedSearch, error) {
	body := map[string]string{"query": query}
	var ss SavedSearch
	err := c.do(ctx, http.MethodPost, "/api/saved-searches", body, &ss)
	return ss, err
}

// CheckSavedSearch reports how many new results arrived since the last check.
func (c *Client) CheckSavedSearch(ctx context.Context, id string) (WatchResult, error) {
	var result WatchResult
	err := c.do(ctx, http.MethodGet, "/api/saved-searches/"+url.PathEscape(id)+"/check", nil, &result)
	return result, err
}

// DeleteSavedSearch removes a saved search.
func (c *Client) DeleteSavedSearch(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/saved-searches/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sdk: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("sdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		// Degraded health still carries a decodable body.
		if out != nil {
			_ = json.NewDecoder(resp.Body).Decode(out)
		}
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sdk: decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusServiceUnavailable:
		return ErrUnavailable
	case resp.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	default:
		return fmt.Errorf("sdk: unexpected status %d", resp.StatusCode)
	}
}
