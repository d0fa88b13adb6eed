package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/statusinvest-mcp/internal/domain/dto"
	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/service"
)

var errMissingStocks = fmt.Errorf("%w: stocks is required", models.ErrInvalidQuery)

// Handler provides HTTP handlers for the stock endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the stock service with the request context
//   - Wrap service results into response DTOs
//   - Record failures with c.Error; middleware.ErrorHandler writes the response
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StockService): service used to fetch and normalize stock data.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetQuotes godoc
// @Summary      Quote summaries
// @Description  Searches each symbol and returns every matching asset with price, variation and links
// @Tags         stocks
// @Produce      json
// @Param        stocks  query     string  true  "Comma-separated symbols (or repeated)" example(PETR4,VALE3)
// @Success      200     {object}  dto.QuotesResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/quotes [get]
func (h *Handler) GetQuotes(c *gin.Context) {
	stocks := stocksParam(c)
	if len(stocks) == 0 {
		_ = c.Error(errMissingStocks)
		return
	}

	out, err := h.svc.Resume(c.Request.Context(), stocks)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.QuotesResponse{Count: len(out), Results: out})
}

// GetIndicators godoc
// @Summary      Indicator reports
// @Description  Scrapes each symbol's detail page into a price resume and indicator groups. Symbols whose page could not be fetched are omitted.
// @Tags         stocks
// @Produce      json
// @Param        stocks  query     string  true  "Comma-separated symbols (or repeated)" example(PETR4)
// @Success      200     {object}  dto.IndicatorsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/indicators [get]
func (h *Handler) GetIndicators(c *gin.Context) {
	stocks := stocksParam(c)
	if len(stocks) == 0 {
		_ = c.Error(errMissingStocks)
		return
	}

	out, err := h.svc.Indicators(c.Request.Context(), stocks)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.IndicatorsResponse{Count: len(out), Results: out})
}

// GetPaymentDates godoc
// @Summary      Payment calendar
// @Description  Lists earnings payments between two dates, optionally filtered by B3 tickers
// @Tags         stocks
// @Produce      json
// @Param        initialDate  query     string  true   "Start date (YYYY-MM-DD)" example(2024-01-01)
// @Param        finalDate    query     string  true   "End date (YYYY-MM-DD)" example(2024-01-31)
// @Param        stocks       query     string  false  "Comma-separated tickers" example(PETR4,VALE3)
// @Success      200          {object}  dto.PaymentDatesResponse  "Success"
// @Failure      400          {object}  dto.ErrorResponse         "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/payment-dates [get]
func (h *Handler) GetPaymentDates(c *gin.Context) {
	query, err := models.PaymentDatesQuery{
		InitialDate: c.Query("initialDate"),
		FinalDate:   c.Query("finalDate"),
		Stocks:      stocksParam(c),
	}.Normalize()
	if err != nil {
		_ = c.Error(err)
		return
	}

	out, err := h.svc.PaymentDates(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentDatesResponse{
		InitialDate: query.InitialDate,
		FinalDate:   query.FinalDate,
		Count:       len(out),
		Results:     out,
	})
}

// stocksParam accepts both ?stocks=A,B and ?stocks=A&stocks=B.
func stocksParam(c *gin.Context) []string {
	var out []string
	for _, raw := range c.QueryArray("stocks") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
