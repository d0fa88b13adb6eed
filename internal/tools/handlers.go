package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/guttosm/statusinvest-mcp/internal/domain/dto"
	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/logger"
	"github.com/guttosm/statusinvest-mcp/internal/service"
)

func handleQuotes(svc service.StockService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stocks := symbolsArg(request)
		if len(stocks) == 0 {
			return mcp.NewToolResultError("Error: stocks parameter is required"), nil
		}

		out, err := svc.Resume(ctx, stocks)
		if err != nil {
			return internalError(ToolQuotes, err), nil
		}
		return jsonResult(ToolQuotes, out), nil
	}
}

func handleIndicators(svc service.StockService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stocks := symbolsArg(request)
		if len(stocks) == 0 {
			return mcp.NewToolResultError("Error: stocks parameter is required"), nil
		}

		out, err := svc.Indicators(ctx, stocks)
		if err != nil {
			return internalError(ToolIndicators, err), nil
		}
		return jsonResult(ToolIndicators, out), nil
	}
}

func handlePaymentDates(svc service.StockService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		initial, err := request.RequireString("initialDate")
		if err != nil || initial == "" {
			return mcp.NewToolResultError("Error: initialDate parameter is required"), nil
		}
		final, err := request.RequireString("finalDate")
		if err != nil || final == "" {
			return mcp.NewToolResultError("Error: finalDate parameter is required"), nil
		}

		query, err := models.PaymentDatesQuery{
			InitialDate: initial,
			FinalDate:   final,
			Stocks:      symbolsArg(request),
		}.Normalize()
		if err != nil {
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}

		out, err := svc.PaymentDates(ctx, query)
		if err != nil {
			return internalError(ToolPaymentDates, err), nil
		}
		return jsonResult(ToolPaymentDates, out), nil
	}
}

// symbolsArg reads the symbol list from "stocks", falling back to "stock".
// A plain string is split on commas.
func symbolsArg(request mcp.CallToolRequest) []string {
	for _, key := range []string{"stocks", "stock"} {
		if list := request.GetStringSlice(key, nil); len(list) > 0 {
			return cleanSymbols(list)
		}
		if s := request.GetString(key, ""); s != "" {
			return cleanSymbols(strings.Split(s, ","))
		}
	}
	return nil
}

func cleanSymbols(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func jsonResult(tool string, v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return internalError(tool, fmt.Errorf("encode result: %w", err))
	}
	return mcp.NewToolResultText(string(b))
}

func internalError(tool string, err error) *mcp.CallToolResult {
	logger.L().Error().Err(err).Str("tool", tool).Msg("tool call failed")

	msg := "Failed to process request"
	if errors.Is(err, service.ErrInternal) {
		msg = "Internal error"
	}
	b, mErr := json.MarshalIndent(dto.NewErrorResponse(msg, err), "", "  ")
	if mErr != nil {
		return mcp.NewToolResultError(msg + ": " + err.Error())
	}
	return mcp.NewToolResultError(string(b))
}
