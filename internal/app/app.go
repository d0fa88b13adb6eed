package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"github.com/guttosm/statusinvest-mcp/config"
	"github.com/guttosm/statusinvest-mcp/internal/api"
	"github.com/guttosm/statusinvest-mcp/internal/logger"
	"github.com/guttosm/statusinvest-mcp/internal/tools"
)

// clientFactory is an indirection for unit testing.
var clientFactory = NewStatusInvestClient

// InitializeApp sets up all application dependencies for API mode and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Status Invest client from config.AppConfig.
//   - Initializes the stock service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes (readiness pings the upstream).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	client, err := clientFactory(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize statusinvest client: %w", err)
	}

	svc := NewStockService(cfg, client)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	api.NewHealthHandler(client.Ping).Register(router)

	logger.L().Info().
		Str("base_url", client.BaseURL()).
		Int("parallelism", cfg.StatusInvest.Parallelism).
		Msg("api initialized")

	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}

// InitializeMCP sets up the MCP server with all stock tools registered.
//
// Returns:
//   - *server.MCPServer: ready to be served over stdio.
//   - error: any initialization error that occurred.
func InitializeMCP() (*server.MCPServer, error) {
	cfg := config.AppConfig

	client, err := clientFactory(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize statusinvest client: %w", err)
	}

	svc := NewStockService(cfg, client)
	s := tools.NewServer(svc, cfg.MCP.Name, cfg.MCP.Version)

	logger.L().Info().
		Str("name", cfg.MCP.Name).
		Str("version", cfg.MCP.Version).
		Str("base_url", client.BaseURL()).
		Msg("mcp server initialized")

	return s, nil
}
