package dto

import "github.com/guttosm/statusinvest-mcp/internal/domain/models"

// QuotesResponse is returned by GET /api/v1/quotes.
type QuotesResponse struct {
	Count   int                   `json:"count" example:"1"`
	Results []models.QuoteSummary `json:"results"`
}

// IndicatorsResponse is returned by GET /api/v1/indicators.
type IndicatorsResponse struct {
	Count   int                           `json:"count" example:"1"`
	Results []models.StockIndicatorReport `json:"results"`
}

// PaymentDatesResponse is returned by GET /api/v1/payment-dates.
//
// InitialDate and FinalDate echo the normalized (ISO) window that was queried.
type PaymentDatesResponse struct {
	InitialDate string                  `json:"initialDate" example:"2024-01-01"`
	FinalDate   string                  `json:"finalDate" example:"2024-01-31"`
	Count       int                     `json:"count" example:"2"`
	Results     []models.EarningsRecord `json:"results"`
}
