package main

//
//  @title           statusinvest-mcp API
//  @version         1.0
//  @description     Status Invest quotes, indicators and payment calendar, normalized.
//  @termsOfService  https://github.com/guttosm/statusinvest-mcp
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/statusinvest-mcp
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Quote, indicator and payment calendar lookups
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/guttosm/statusinvest-mcp/config"
	_ "github.com/guttosm/statusinvest-mcp/docs" // swagger docs
	"github.com/guttosm/statusinvest-mcp/internal/app"
	"github.com/guttosm/statusinvest-mcp/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//   - requestTimeout (time.Duration): per-request deadline; the write timeout leaves room above it.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string, requestTimeout time.Duration) *http.Server {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return srv
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - srv (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle upstream connections).
func gracefulShutdown(ctx context.Context, srv *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// serveMCP runs the MCP server over stdin/stdout until the client disconnects
// or the process is signalled.
func serveMCP() error {
	s, err := app.InitializeMCP()
	if err != nil {
		return err
	}
	logger.L().Info().Msg("serving MCP over stdio")
	return server.ServeStdio(s)
}

// main is the entry point of the statusinvest-mcp application.
//
// Modes (selected via --mode flag):
//   - mcp: Serves the stock tools over MCP stdio (stdout is reserved for protocol frames).
//   - api: Starts the REST API exposing the same operations.
//
// Flags:
//   - --mode: Execution mode ("mcp" or "api"). Default: "mcp".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger (stderr)
	logger.Init()

	mode := flag.String("mode", "mcp", "Mode: mcp or api")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "mcp":
		if err := serveMCP(); err != nil {
			logger.L().Fatal().Err(err).Msg("mcp server error")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		srv := startServer(router, *port, config.AppConfig.Server.RequestTimeout)
		gracefulShutdown(ctx, srv, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
