package models

// PriceValue is the current price with its day-over-day variation (%).
type PriceValue struct {
	Value     Number `json:"value" swaggertype:"number" example:"38.45"`
	Variation Number `json:"variation" swaggertype:"number" example:"-1.23"`
}

// Value wraps a single resume figure.
type Value struct {
	Value Number `json:"value" swaggertype:"number" example:"30.12"`
}

// StockResume is the price and valuation snapshot shown at the top of a
// stock's detail page. Fields whose anchor was missing are unavailable (NaN).
//
// swagger:model StockResume
type StockResume struct {
	Price                 PriceValue `json:"price"`
	Min52Weeks            Value      `json:"min52Weeks"`
	Max52Weeks            Value      `json:"max52Weeks"`
	MinMonth              Value      `json:"minMonth"`
	MaxMonth              Value      `json:"maxMonth"`
	Valuation12Months     Value      `json:"valuation12Months"`
	ValuationCurrentMonth Value      `json:"valuationCurrentMonth"`
}

// EmptyResume returns a resume with every field unavailable.
func EmptyResume() StockResume {
	na := Value{Value: Unavailable()}
	return StockResume{
		Price:                 PriceValue{Value: Unavailable(), Variation: Unavailable()},
		Min52Weeks:            na,
		Max52Weeks:            na,
		MinMonth:              na,
		MaxMonth:              na,
		Valuation12Months:     na,
		ValuationCurrentMonth: na,
	}
}

// IndicatorValue is one titled metric inside an indicator group.
type IndicatorValue struct {
	Title string `json:"title" example:"P/L"`
	Value Number `json:"value" swaggertype:"number" example:"4.12"`
}

// IndicatorGroup is a named cluster of metrics in document order. Duplicate
// titles are kept.
//
// swagger:model IndicatorGroup
type IndicatorGroup struct {
	Title  string           `json:"title" example:"indicadoresDeValuation"`
	Values []IndicatorValue `json:"values"`
}

// StockIndicatorReport is the per-symbol result of the indicators operation.
// It exists only for symbols whose detail page was fetched.
//
// swagger:model StockIndicatorReport
type StockIndicatorReport struct {
	Stock      string           `json:"stock" example:"PETR4"`
	URL        string           `json:"url" example:"https://statusinvest.com.br/acoes/petr4"`
	Resume     StockResume      `json:"resume"`
	Indicators []IndicatorGroup `json:"indicators"`
}
