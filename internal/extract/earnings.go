package extract

import (
	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/normalize"
	"github.com/guttosm/statusinvest-mcp/internal/statusinvest"
)

// invalidDate is what an unreadable upstream date is rendered as.
const invalidDate = "Invalid Date"

// MapEarnings flattens the payment-date list of an earnings payload into
// records, in input order.
//
// Parameters:
//   - payload (*statusinvest.EarningsPayload): calendar response; may be nil.
//   - baseURL (string): site root prepended to each item's relative URL.
//
// Returns:
//   - []models.EarningsRecord: never nil; empty when payload is nil or has no
//     payment dates.
func MapEarnings(payload *statusinvest.EarningsPayload, baseURL string) []models.EarningsRecord {
	if payload == nil || len(payload.DatePayment) == 0 {
		return []models.EarningsRecord{}
	}

	out := make([]models.EarningsRecord, 0, len(payload.DatePayment))
	for _, item := range payload.DatePayment {
		out = append(out, models.EarningsRecord{
			Code:        item.Code,
			CompanyName: item.CompanyName,
			Price:       models.Number(normalize.ParsePlainDecimal(item.ResultAbsoluteValue)),
			DateCom:     reformatDate(item.DateCom),
			PaymentDate: reformatDate(item.PaymentDividend),
			Type:        item.EarningType,
			DY:          item.DY,
			URL:         baseURL + item.URLClear,
		})
	}
	return out
}

func reformatDate(s string) string {
	iso, err := normalize.ToISO(s, normalize.Lenient)
	if err != nil {
		return invalidDate
	}
	return iso
}
