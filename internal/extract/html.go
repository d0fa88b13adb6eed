// Package extract turns Status Invest pages and payloads into typed records.
package extract

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/logger"
	"github.com/guttosm/statusinvest-mcp/internal/normalize"
)

// Extractor reads the resume and indicator groups of a stock detail page.
// It is stateless and safe for concurrent use.
type Extractor struct {
	selectors SelectorTable
}

// NewExtractor returns an extractor using table, or DefaultSelectors when
// table is nil.
func NewExtractor(table SelectorTable) *Extractor {
	if table == nil {
		table = DefaultSelectors
	}
	return &Extractor{selectors: table}
}

// ExtractResume reads the resume figures from html. Fields whose anchor is
// missing or unreadable are NaN; the remaining fields are still filled.
func (e *Extractor) ExtractResume(html string) models.StockResume {
	doc, ok := parse(html)
	if !ok {
		return models.EmptyResume()
	}
	return e.resume(doc)
}

// ExtractIndicatorGroups reads every indicator group in document order. A page
// without the indicator container yields an empty, non-nil slice.
func (e *Extractor) ExtractIndicatorGroups(html string) []models.IndicatorGroup {
	doc, ok := parse(html)
	if !ok {
		return []models.IndicatorGroup{}
	}
	return indicatorGroups(doc)
}

// Extract parses html once and returns both the resume and indicator groups.
func (e *Extractor) Extract(html string) (models.StockResume, []models.IndicatorGroup) {
	doc, ok := parse(html)
	if !ok {
		return models.EmptyResume(), []models.IndicatorGroup{}
	}
	return e.resume(doc), indicatorGroups(doc)
}

// lookup returns the parsed value of field and whether its anchor was present
// in doc. A present anchor with unreadable text returns (NaN, true).
func (e *Extractor) lookup(doc *goquery.Document, field Field) (float64, bool) {
	sel, ok := e.selectors[field]
	if !ok || sel.Rule == nil {
		return math.NaN(), false
	}
	found := doc.Find(sel.Query)
	if found.Length() == 0 {
		return math.NaN(), false
	}
	return sel.Rule(strings.TrimSpace(found.Text())), true
}

func (e *Extractor) resume(doc *goquery.Document) models.StockResume {
	var missing []string
	value := func(f Field) models.Number {
		v, found := e.lookup(doc, f)
		if !found {
			missing = append(missing, string(f))
		}
		return models.Number(v)
	}

	r := models.StockResume{
		Price: models.PriceValue{
			Value:     value(FieldPrice),
			Variation: value(FieldVariation),
		},
		Min52Weeks:            models.Value{Value: value(FieldMin52Weeks)},
		Max52Weeks:            models.Value{Value: value(FieldMax52Weeks)},
		MinMonth:              models.Value{Value: value(FieldMinMonth)},
		MaxMonth:              models.Value{Value: value(FieldMaxMonth)},
		Valuation12Months:     models.Value{Value: value(FieldValuation12Months)},
		ValuationCurrentMonth: models.Value{Value: value(FieldValuationCurrentMonth)},
	}
	if len(missing) > 0 {
		logger.L().Debug().Strs("fields", missing).Msg("resume anchors not found")
	}
	return r
}

func indicatorGroups(doc *goquery.Document) []models.IndicatorGroup {
	groups := []models.IndicatorGroup{}
	doc.Find(indicatorContainerQuery).Each(func(_ int, block *goquery.Selection) {
		title := strings.TrimSpace(block.Find(groupTitleQuery).Text())

		values := []models.IndicatorValue{}
		block.Find(itemQuery).Each(func(_ int, item *goquery.Selection) {
			values = append(values, models.IndicatorValue{
				Title: strings.TrimSpace(item.Find(itemTitleQuery).Text()),
				Value: models.Number(Decimal(strings.TrimSpace(item.Find(itemValueQuery).Text()))),
			})
		})

		groups = append(groups, models.IndicatorGroup{
			Title:  normalize.CamelCase(title),
			Values: values,
		})
	})
	return groups
}

func parse(html string) (*goquery.Document, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.L().Warn().Err(err).Msg("html parse failed")
		return nil, false
	}
	return doc, true
}
