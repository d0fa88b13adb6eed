// Package statusinvest fetches quote searches, stock detail pages and the
// earnings calendar from statusinvest.com.br.
//
// Every fetch fails soft: transport, HTTP and decode errors are logged and
// reported to the caller as an absent result, never as an error.
package statusinvest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/guttosm/statusinvest-mcp/internal/logger"
)

const (
	DefaultBaseURL   = "https://statusinvest.com.br"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"

	// avatarVersion is the cache-busting suffix the site appends to logos.
	avatarVersion = "214"
)

// Client talks to Status Invest over HTTP.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL (no trailing slash).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Status Invest client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the site root used to build absolute links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StockURL returns the public detail page of symbol.
func (c *Client) StockURL(symbol string) string {
	return c.baseURL + "/acoes/" + strings.ToLower(symbol)
}

// ImageURL returns the company avatar for a search result's parent id.
func (c *Client) ImageURL(parentID int64) string {
	return fmt.Sprintf("%s/img/company/avatar/%d.jpg?v=%s", c.baseURL, parentID, avatarVersion)
}

// SearchQuotes runs the fuzzy symbol search. A nil result means the lookup
// failed; an empty slice means it succeeded with no hits.
func (c *Client) SearchQuotes(ctx context.Context, symbol string) []RawQuote {
	var out []RawQuote
	endpoint := "/home/mainsearchquery?q=" + url.QueryEscape(strings.ToLower(symbol))
	if !c.getJSON(ctx, endpoint, symbol, &out) {
		return nil
	}
	if out == nil {
		out = []RawQuote{}
	}
	return out
}

// DetailPage returns the raw HTML of symbol's detail page.
func (c *Client) DetailPage(ctx context.Context, symbol string) (string, bool) {
	body, ok := c.get(ctx, "/acoes/"+url.PathEscape(strings.ToLower(symbol)), symbol, "text/html")
	if !ok {
		return "", false
	}
	return string(body), true
}

// Earnings looks up the dividend calendar between req.Start and req.End,
// filtered to req.Symbol when set. Returns nil when the lookup failed.
func (c *Client) Earnings(ctx context.Context, req EarningsRequest) *EarningsPayload {
	q := url.Values{}
	q.Set("IndiceCode", "")
	q.Set("Filter", req.Symbol)
	q.Set("Start", req.Start)
	q.Set("End", req.End)

	var out EarningsPayload
	if !c.getJSON(ctx, "/acao/getearnings?"+q.Encode(), req.Symbol, &out) {
		return nil
	}
	return &out
}

// Ping checks that the site answers at all. Used by readiness probes only.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("statusinvest unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("statusinvest unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// CloseIdleConnections releases pooled keep-alive connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) getJSON(ctx context.Context, endpoint, symbol string, out any) bool {
	body, ok := c.get(ctx, endpoint, symbol, "application/json")
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		logger.L().Warn().Err(err).Str("symbol", symbol).Str("endpoint", endpoint).Msg("statusinvest decode failed")
		return false
	}
	return true
}

// get performs a GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, endpoint, symbol, accept string) ([]byte, bool) {
	reqURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.L().Error().Err(err).Str("url", reqURL).Msg("statusinvest request build failed")
		return nil, false
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		logger.L().Error().Err(err).Str("symbol", symbol).Str("url", reqURL).Dur("elapsed", elapsed).Msg("statusinvest request failed")
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.L().Warn().Str("symbol", symbol).Str("url", reqURL).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("statusinvest non-OK response")
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.L().Error().Err(err).Str("symbol", symbol).Str("url", reqURL).Msg("statusinvest read body failed")
		return nil, false
	}

	logger.L().Debug().Str("symbol", symbol).Str("url", reqURL).Int("status", resp.StatusCode).
		Int("bytes", len(body)).Dur("elapsed", elapsed).Msg("statusinvest call")
	return body, true
}
