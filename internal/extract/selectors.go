package extract

import "github.com/guttosm/statusinvest-mcp/internal/normalize"

// Field names one figure of the stock resume.
type Field string

const (
	FieldPrice                 Field = "price"
	FieldVariation             Field = "variation"
	FieldMin52Weeks            Field = "min52Weeks"
	FieldMax52Weeks            Field = "max52Weeks"
	FieldMinMonth              Field = "minMonth"
	FieldMaxMonth              Field = "maxMonth"
	FieldValuation12Months     Field = "valuation12Months"
	FieldValuationCurrentMonth Field = "valuationCurrentMonth"
)

// Rule is the locale parser applied to an anchor's text.
type Rule func(string) float64

var (
	Currency   Rule = normalize.ParseCurrency
	Percentage Rule = normalize.ParsePercentage
	Decimal    Rule = normalize.ParsePlainDecimal
)

// Selector locates one resume figure: a CSS query (title attribute anchor
// plus a class-based child) and the rule used to read its text.
type Selector struct {
	Query string
	Rule  Rule
}

// SelectorTable maps each resume field to where it lives in the page.
// Markup changes on the site are absorbed by editing this table.
type SelectorTable map[Field]Selector

// DefaultSelectors matches the statusinvest.com.br stock detail page.
var DefaultSelectors = SelectorTable{
	FieldPrice: {
		Query: `div[title="Valor atual do ativo"] strong.value`,
		Rule:  Currency,
	},
	FieldVariation: {
		Query: `span[title="Variação do valor do ativo com base no dia anterior"] b`,
		Rule:  Percentage,
	},
	FieldMin52Weeks: {
		Query: `div[title="Valor mínimo das últimas 52 semanas"] strong.value`,
		Rule:  Currency,
	},
	FieldMax52Weeks: {
		Query: `div[title="Valor máximo das últimas 52 semanas"] strong.value`,
		Rule:  Currency,
	},
	FieldMinMonth: {
		Query: `div[title="Valor mínimo do mês atual"] span.sub-value`,
		Rule:  Currency,
	},
	FieldMaxMonth: {
		Query: `div[title="Valor máximo do mês atual"] span.sub-value`,
		Rule:  Currency,
	},
	// rendered as "12,34%" but read with the currency rule
	FieldValuation12Months: {
		Query: `div[title="Valorização no preço do ativo com base nos últimos 12 meses"] strong.value`,
		Rule:  Currency,
	},
	FieldValuationCurrentMonth: {
		Query: `div[title="Valorização no preço do ativo com base no mês atual"] span.sub-value b`,
		Rule:  Percentage,
	},
}

// Indicator group anchors.
const (
	indicatorContainerQuery = `div.indicator-today-container > div > div.indicators`
	groupTitleQuery         = `strong.uppercase`
	itemQuery               = `.item`
	itemTitleQuery          = `.title`
	itemValueQuery          = `.value`
)
