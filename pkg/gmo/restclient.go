package gmo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RESTClient talks to the GMO Coin public and private REST APIs.
type RESTClient struct {
	publicURL  string
	privateURL string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewRESTClient(publicURL, privateURL, apiKey, apiSecret string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		publicURL:  publicURL,
		privateURL: privateURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) HTTPClient() *http.Client {
	return c.httpClient
}

// Status fetches the exchange trading status (public API).
func (c *RESTClient) Status(ctx context.Context) (*StatusData, error) {
	raw, err := c.get(ctx, c.publicURL, "/v1/status", nil, false)
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &status, nil
}

// Ticker fetches the latest ticker for symbol, or all symbols when empty (public API).
func (c *RESTClient) Ticker(ctx context.Context, symbol string) ([]TickerEntry, error) {
	query := url.Values{}
	if symbol != "" {
		query.Set("symbol", symbol)
	}

	raw, err := c.get(ctx, c.publicURL, "/v1/ticker", query, false)
	if err != nil {
		return nil, err
	}

	var entries []TickerEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return entries, nil
}

// GetAssets fetches the account balances (private API).
func (c *RESTClient) GetAssets(ctx context.Context) ([]Asset, error) {
	raw, err := c.get(ctx, c.privateURL, "/v1/account/assets", nil, true)
	if err != nil {
		return nil, err
	}

	var assets []Asset
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return assets, nil
}

// GetExecutions fetches executions by order id or execution id (private API).
func (c *RESTClient) GetExecutions(ctx context.Context, orderID, executionID string) ([]Execution, error) {
	query := url.Values{}
	if orderID != "" {
		query.Set("orderId", orderID)
	}
	if executionID != "" {
		query.Set("executionId", executionID)
	}

	raw, err := c.get(ctx, c.privateURL, "/v1/executions", query, true)
	if err != nil {
		return nil, err
	}

	var list ExecutionList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return list.List, nil
}

// GetLatestExecutions fetches the account's executions for symbol within the
// venue's own lookback window (the most recent 24 hours). Page and count are
// optional; zero values leave them to the venue defaults.
func (c *RESTClient) GetLatestExecutions(ctx context.Context, symbol string, page, count int64) (*LatestExecutions, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if page > 0 {
		query.Set("page", strconv.FormatInt(page, 10))
	}
	if count > 0 {
		query.Set("count", strconv.FormatInt(count, 10))
	}

	raw, err := c.get(ctx, c.privateURL, "/v1/latestExecutions", query, true)
	if err != nil {
		return nil, err
	}

	var latest LatestExecutions
	if err := json.Unmarshal(raw, &latest); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return &latest, nil
}

// get performs a GET against base+path, signing the request when private is set,
// and returns the envelope's raw data payload.
func (c *RESTClient) get(ctx context.Context, base, path string, query url.Values, private bool) (json.RawMessage, error) {
	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// The signature covers the path only, not the query string
	if private {
		signRequest(req, c.apiKey, c.apiSecret, http.MethodGet, path, "")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Check HTTP status code
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gmo error: %s", body)
	}

	var rawResp Response
	if err := json.NewDecoder(resp.Body).Decode(&rawResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// Non-zero envelope status is a venue-reported error
	if rawResp.Status != 0 {
		if len(rawResp.Messages) > 0 {
			m := rawResp.Messages[0]
			return nil, fmt.Errorf("gmo error %s: %s (status=%d)", m.Code, m.Text, rawResp.Status)
		}
		return nil, fmt.Errorf("gmo error: status=%d", rawResp.Status)
	}

	return rawResp.Data, nil
}
