package models

import "strconv"

// AssetClass is the human-readable kind of a listed asset.
type AssetClass string

const (
	AssetEquity       AssetClass = "ação"
	AssetREIT         AssetClass = "fii"
	AssetBDR          AssetClass = "bdr"
	AssetETF          AssetClass = "etf"
	AssetForeignStock AssetClass = "stock"
	AssetFund         AssetClass = "fundos"
	AssetInfraREIT    AssetClass = "fii-infra"
	AssetAgroFund     AssetClass = "fiagro"
	AssetCrypto       AssetClass = "cripto"
	AssetForeignETF   AssetClass = "etf-exterior"
)

// assetClasses maps the upstream numeric type code to its asset class.
var assetClasses = map[int]AssetClass{
	1:   AssetEquity,
	2:   AssetREIT,
	4:   AssetBDR,
	6:   AssetETF,
	12:  AssetForeignStock,
	15:  AssetFund,
	22:  AssetInfraREIT,
	24:  AssetAgroFund,
	100: AssetCrypto,
	901: AssetForeignETF,
}

// LookupAssetClass returns the asset class for code and whether it is known.
func LookupAssetClass(code int) (AssetClass, bool) {
	c, ok := assetClasses[code]
	return c, ok
}

// ClassifyQuoteType returns the asset class label for code, or "<code> unknown"
// when the code is not in the table. Consumers match on that exact string.
func ClassifyQuoteType(code int) string {
	if c, ok := assetClasses[code]; ok {
		return string(c)
	}
	return strconv.Itoa(code) + " unknown"
}

// QuoteSummary is one hit of the upstream symbol search.
//
// Type holds an AssetClass value, or "<code> unknown" for unmapped codes.
//
// swagger:model QuoteSummary
type QuoteSummary struct {
	ID          int64  `json:"id" example:"408"`
	Type        string `json:"type" example:"ação"`
	Code        string `json:"code" example:"PETR4"`
	Name        string `json:"name" example:"PETROBRAS"`
	Price       Number `json:"price" swaggertype:"number" example:"38.45"`
	Variation   Number `json:"variation" swaggertype:"number" example:"-1.23"`
	VariationUp bool   `json:"variationUp" example:"false"`
	URL         string `json:"url" example:"/acoes/petr4"`
	ImageURL    string `json:"imageUrl" example:"https://statusinvest.com.br/img/company/avatar/408.jpg?v=214"`
}
