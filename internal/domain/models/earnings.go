package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/guttosm/statusinvest-mcp/internal/normalize"
)

// ErrInvalidQuery marks caller input rejected before any fetch is made.
var ErrInvalidQuery = errors.New("invalid query")

// tickerPattern is the B3 convention: four letters followed by 3 (ON),
// 4 (PN) or 11 (units).
var tickerPattern = regexp.MustCompile(`^[A-Z]{4}(3|4|11)$`)

// EarningsRecord is one dividend/earnings payment event.
//
// swagger:model EarningsRecord
type EarningsRecord struct {
	Code        string `json:"code" example:"PETR4"`
	CompanyName string `json:"companyName" example:"PETROBRAS"`
	Price       Number `json:"price" swaggertype:"number" example:"0.35"`
	DateCom     string `json:"dateCom" example:"2024-04-25"`
	PaymentDate string `json:"paymentDate" example:"2024-05-20"`
	Type        string `json:"type" example:"Dividendo"`
	DY          string `json:"dy" example:"0,92"`
	URL         string `json:"url" example:"https://statusinvest.com.br/acoes/petr4"`
}

// PaymentDatesQuery selects payment events between two ISO dates, optionally
// restricted to a list of tickers.
//
// swagger:model PaymentDatesQuery
type PaymentDatesQuery struct {
	InitialDate string   `json:"initialDate" example:"2024-01-01"`
	FinalDate   string   `json:"finalDate" example:"2024-12-31"`
	Stocks      []string `json:"stocks,omitempty" example:"PETR4,VALE3"`
}

// IsTicker reports whether s follows the B3 ticker convention.
func IsTicker(s string) bool {
	return tickerPattern.MatchString(s)
}

// Normalize validates q and returns a copy ready for the service layer.
//
// Behavior:
//   - Dates must be YYYY-MM-DD.
//   - FinalDate may not precede InitialDate.
//   - Tickers are trimmed and must match the B3 pattern as given; lowercase is rejected.
//
// Returns:
//   - PaymentDatesQuery: the normalized query.
//   - error: wraps ErrInvalidQuery with a message naming the offending field.
func (q PaymentDatesQuery) Normalize() (PaymentDatesQuery, error) {
	initial := strings.TrimSpace(q.InitialDate)
	if err := normalize.ValidateISO(initial); err != nil {
		return PaymentDatesQuery{}, fmt.Errorf("%w: initialDate: %v", ErrInvalidQuery, err)
	}
	final := strings.TrimSpace(q.FinalDate)
	if err := normalize.ValidateISO(final); err != nil {
		return PaymentDatesQuery{}, fmt.Errorf("%w: finalDate: %v", ErrInvalidQuery, err)
	}
	// ISO dates compare lexically
	if final < initial {
		return PaymentDatesQuery{}, fmt.Errorf("%w: finalDate %s is before initialDate %s", ErrInvalidQuery, final, initial)
	}

	var stocks []string
	for _, s := range q.Stocks {
		ticker := strings.TrimSpace(s)
		if !IsTicker(ticker) {
			return PaymentDatesQuery{}, fmt.Errorf("%w: ticker %q must be 4 letters followed by 3, 4 or 11", ErrInvalidQuery, s)
		}
		stocks = append(stocks, ticker)
	}

	return PaymentDatesQuery{InitialDate: initial, FinalDate: final, Stocks: stocks}, nil
}
