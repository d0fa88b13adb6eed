package statusinvest

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/guttosm/statusinvest-mcp/internal/normalize"
)

// LocaleNumber is a numeric field the search endpoint sends either as a JSON
// number or as Brazilian-formatted text ("38,45").
type LocaleNumber struct {
	Text    string
	numeric bool
	value   float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *LocaleNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = LocaleNumber{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = LocaleNumber{Text: s}
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = LocaleNumber{Text: string(data), numeric: true, value: f}
	return nil
}

// Float returns the value; text is read as currency and yields NaN when it
// holds no number.
func (n LocaleNumber) Float() float64 {
	if n.numeric {
		return n.value
	}
	return normalize.ParseCurrency(n.Text)
}

// RawQuote is one item of the /home/mainsearchquery response.
type RawQuote struct {
	ID             int64        `json:"id"`
	ParentID       int64        `json:"parentId"`
	NameFormated   string       `json:"nameFormated"`
	Name           string       `json:"name"`
	NormalizedName string       `json:"normalizedName"`
	Code           string       `json:"code"`
	Price          LocaleNumber `json:"price"`
	Variation      LocaleNumber `json:"variation"`
	VariationUp    bool         `json:"variationUp"`
	Type           int          `json:"type"`
	URL            string       `json:"url"`
}

// EarningsPayload is the /acao/getearnings response.
type EarningsPayload struct {
	Category    int               `json:"category"`
	From        string            `json:"from"`
	Controller  string            `json:"controller"`
	Close       bool              `json:"close"`
	DateCom     []RawEarningsItem `json:"dateCom"`
	DatePayment []RawEarningsItem `json:"datePayment"`
	Provisioned json.RawMessage   `json:"provisioned"`
}

// RawEarningsItem is a single calendar entry; dates are DD/MM/YYYY and the
// value uses a decimal comma.
type RawEarningsItem struct {
	Code                string `json:"code"`
	CompanyName         string `json:"companyName"`
	CompanyNameClean    string `json:"companyNameClean"`
	CompanyID           int64  `json:"companyId"`
	ResultAbsoluteValue string `json:"resultAbsoluteValue"`
	DateCom             string `json:"dateCom"`
	PaymentDividend     string `json:"paymentDividend"`
	EarningType         string `json:"earningType"`
	DY                  string `json:"dy"`
	RecentEvents        int    `json:"recentEvents"`
	RecentReports       int    `json:"recentReports"`
	URLClear            string `json:"uRLClear"`
	RankDateCom         int    `json:"rankDateCom"`
	RankPaymentDividend int    `json:"rankPaymentDividend"`
}

// EarningsRequest is the date window (ISO) and optional ticker filter for a
// calendar lookup.
type EarningsRequest struct {
	Start  string
	End    string
	Symbol string
}
