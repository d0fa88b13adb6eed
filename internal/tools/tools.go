// Package tools exposes the stock service as MCP tools.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/guttosm/statusinvest-mcp/internal/service"
)

// Tool names as advertised to MCP clients.
const (
	ToolQuotes       = "get-acoes"
	ToolIndicators   = "get-indicadores"
	ToolPaymentDates = "get-acoes-datas-pagamento"
)

// NewServer builds an MCP server with every stock tool registered.
//
// Parameters:
//   - svc (service.StockService): backing service.
//   - name, version (string): reported to clients during initialization.
//
// Returns:
//   - *server.MCPServer: ready for server.ServeStdio.
func NewServer(svc service.StockService, name, version string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTool(createQuotesTool(), handleQuotes(svc))
	s.AddTool(createIndicatorsTool(), handleIndicators(svc))
	s.AddTool(createPaymentDatesTool(), handlePaymentDates(svc))

	return s
}

func createQuotesTool() mcp.Tool {
	return mcp.NewTool(ToolQuotes,
		mcp.WithDescription("Buscar informações básicas de ações: preço, variação, tipo e links de cada ativo encontrado."),
		mcp.WithArray("stocks",
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.Description("Array of stock symbols (e.g. [\"PETR4\", \"VALE3\"])"),
		),
	)
}

func createIndicatorsTool() mcp.Tool {
	return mcp.NewTool(ToolIndicators,
		mcp.WithDescription("Buscar informações de indicadores de ações: resumo de preços e grupos de indicadores fundamentalistas."),
		mcp.WithArray("stocks",
			mcp.Required(),
			mcp.WithStringItems(),
			mcp.Description("Array of stock symbols"),
		),
	)
}

func createPaymentDatesTool() mcp.Tool {
	return mcp.NewTool(ToolPaymentDates,
		mcp.WithDescription("Buscar datas de pagamento de ações (dividendos, JCP, rendimentos) em um intervalo de datas."),
		mcp.WithString("initialDate",
			mcp.Required(),
			mcp.Description("Data inicial (YYYY-MM-DD)"),
		),
		mcp.WithString("finalDate",
			mcp.Required(),
			mcp.Description("Data final (YYYY-MM-DD)"),
		),
		mcp.WithArray("stocks",
			mcp.WithStringItems(),
			mcp.Description("Ações no padrão B3, 4 letras seguidas de 3, 4 ou 11 (e.g. PETR4). Omit for all companies."),
		),
	)
}
