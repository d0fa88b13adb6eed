package app

import (
	"github.com/guttosm/statusinvest-mcp/config"
	"github.com/guttosm/statusinvest-mcp/internal/service"
)

// NewStockService wires the stock service on top of fetcher using the
// configured fan-out.
func NewStockService(cfg config.Config, fetcher service.Fetcher) service.StockService {
	return service.NewStockService(fetcher, service.WithParallelism(cfg.StatusInvest.Parallelism))
}
