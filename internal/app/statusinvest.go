package app

import (
	"fmt"
	"net/url"

	"github.com/guttosm/statusinvest-mcp/config"
	"github.com/guttosm/statusinvest-mcp/internal/statusinvest"
)

// NewStatusInvestClient builds the upstream client from configuration.
//
// Parameters:
//   - cfg (config.Config): application configuration; StatusInvest settings are used.
//
// Behavior:
//   - Rejects a base URL that is not absolute http(s).
//   - Applies user agent and per-request timeout.
//
// Returns:
//   - *statusinvest.Client: safe for concurrent use.
//   - error: if the base URL is unusable.
func NewStatusInvestClient(cfg config.Config) (*statusinvest.Client, error) {
	u, err := url.Parse(cfg.StatusInvest.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid STATUSINVEST_BASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid STATUSINVEST_BASE_URL %q: want absolute http(s) URL", cfg.StatusInvest.BaseURL)
	}

	return statusinvest.NewClient(
		statusinvest.WithBaseURL(cfg.StatusInvest.BaseURL),
		statusinvest.WithUserAgent(cfg.StatusInvest.UserAgent),
		statusinvest.WithTimeout(cfg.StatusInvest.Timeout),
	), nil
}
