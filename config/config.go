package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REQUEST_TIMEOUT=60s
//	STATUSINVEST_BASE_URL=https://statusinvest.com.br
//	STATUSINVEST_USER_AGENT=Mozilla/5.0 ...
//	STATUSINVEST_TIMEOUT=30s
//	FETCH_PARALLELISM=1
//	MCP_SERVER_NAME=statusinvest
//	MCP_SERVER_VERSION=1.0.0
type Config struct {
	Server       ServerConfig       // HTTP server configuration (api mode)
	StatusInvest StatusInvestConfig // Upstream site settings
	MCP          MCPConfig          // Identity reported to MCP clients
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // TCP port the HTTP server listens on (e.g., "8080")
	RequestTimeout time.Duration // Upper bound for a single API request
}

// StatusInvestConfig defines how the upstream site is reached.
//
// Fields:
//   - BaseURL: site root, without trailing slash.
//   - UserAgent: sent on every request; the site rejects non-browser agents.
//   - Timeout: per HTTP round trip.
//   - Parallelism: symbols fetched at once per operation (1 = sequential).
type StatusInvestConfig struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	Parallelism int
}

// MCPConfig is the server identity announced during the MCP handshake.
type MCPConfig struct {
	Name    string
	Version string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// Defaults, also used by tests.
const (
	DefaultPort           = "8080"
	DefaultBaseURL        = "https://statusinvest.com.br"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	DefaultTimeout        = 30 * time.Second
	DefaultRequestTimeout = 60 * time.Second
	DefaultParallelism    = 1
	DefaultMCPName        = "statusinvest"
	DefaultMCPVersion     = "1.0.0"
)

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", DefaultPort)
	viper.SetDefault("REQUEST_TIMEOUT", DefaultRequestTimeout)

	viper.SetDefault("STATUSINVEST_BASE_URL", DefaultBaseURL)
	viper.SetDefault("STATUSINVEST_USER_AGENT", DefaultUserAgent)
	viper.SetDefault("STATUSINVEST_TIMEOUT", DefaultTimeout)
	viper.SetDefault("FETCH_PARALLELISM", DefaultParallelism)

	viper.SetDefault("MCP_SERVER_NAME", DefaultMCPName)
	viper.SetDefault("MCP_SERVER_VERSION", DefaultMCPVersion)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		StatusInvest: StatusInvestConfig{
			BaseURL:     viper.GetString("STATUSINVEST_BASE_URL"),
			UserAgent:   viper.GetString("STATUSINVEST_USER_AGENT"),
			Timeout:     viper.GetDuration("STATUSINVEST_TIMEOUT"),
			Parallelism: viper.GetInt("FETCH_PARALLELISM"),
		},
		MCP: MCPConfig{
			Name:    viper.GetString("MCP_SERVER_NAME"),
			Version: viper.GetString("MCP_SERVER_VERSION"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}

func missingKeys(c Config) []string {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if c.StatusInvest.BaseURL == "" {
		missing = append(missing, "STATUSINVEST_BASE_URL")
	}
	if c.StatusInvest.UserAgent == "" {
		missing = append(missing, "STATUSINVEST_USER_AGENT")
	}
	if c.StatusInvest.Timeout <= 0 {
		missing = append(missing, "STATUSINVEST_TIMEOUT")
	}
	if c.StatusInvest.Parallelism < 1 {
		missing = append(missing, "FETCH_PARALLELISM")
	}
	if c.MCP.Name == "" {
		missing = append(missing, "MCP_SERVER_NAME")
	}
	if c.MCP.Version == "" {
		missing = append(missing, "MCP_SERVER_VERSION")
	}
	return missing
}
