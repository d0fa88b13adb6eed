package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/extract"
	"github.com/guttosm/statusinvest-mcp/internal/logger"
	"github.com/guttosm/statusinvest-mcp/internal/statusinvest"
)

// Fetcher is the upstream collaborator. Every method fails soft: a failed
// lookup is reported as nil/false, never as an error.
type Fetcher interface {
	SearchQuotes(ctx context.Context, symbol string) []statusinvest.RawQuote
	DetailPage(ctx context.Context, symbol string) (string, bool)
	Earnings(ctx context.Context, req statusinvest.EarningsRequest) *statusinvest.EarningsPayload
	BaseURL() string
	StockURL(symbol string) string
	ImageURL(parentID int64) string
}

// StockService assembles quote summaries, indicator reports and payment
// calendars for lists of symbols.
//
// Symbols whose fetch fails are skipped (no placeholder, no error). Output
// follows input order. The only errors returned are *InternalError values for
// unexpected faults recovered during aggregation.
type StockService interface {
	Resume(ctx context.Context, symbols []string) ([]models.QuoteSummary, error)
	Indicators(ctx context.Context, symbols []string) ([]models.StockIndicatorReport, error)
	PaymentDates(ctx context.Context, query models.PaymentDatesQuery) ([]models.EarningsRecord, error)
}

// Option configures the stock service.
type Option func(*stockService)

// WithParallelism bounds how many symbols are fetched at once. Values below 2
// keep the default sequential behavior.
func WithParallelism(n int) Option {
	return func(s *stockService) {
		s.parallelism = n
	}
}

// WithExtractor replaces the HTML extractor (e.g. with a custom selector table).
func WithExtractor(e *extract.Extractor) Option {
	return func(s *stockService) {
		s.extractor = e
	}
}

type stockService struct {
	fetcher     Fetcher
	extractor   *extract.Extractor
	parallelism int
}

// NewStockService wires the service to its fetcher.
func NewStockService(fetcher Fetcher, opts ...Option) StockService {
	s := &stockService{
		fetcher:     fetcher,
		extractor:   extract.NewExtractor(nil),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resume maps every search hit of every symbol into a QuoteSummary. The search
// is fuzzy, so one symbol may yield zero, one or many summaries.
func (s *stockService) Resume(ctx context.Context, symbols []string) (out []models.QuoteSummary, err error) {
	defer recoverInternal("resume", &err)
	start := time.Now()

	out, err = fanOut(ctx, "resume", s.parallelism, symbols, func(ctx context.Context, symbol string) []models.QuoteSummary {
		items := s.fetcher.SearchQuotes(ctx, symbol)
		if len(items) == 0 {
			logger.L().Debug().Str("symbol", symbol).Msg("no quotes found, skipping")
			return nil
		}
		summaries := make([]models.QuoteSummary, 0, len(items))
		for _, item := range items {
			summaries = append(summaries, s.toSummary(item))
		}
		return summaries
	})

	logger.L().Info().Int("symbols", len(symbols)).Int("results", len(out)).Dur("elapsed", time.Since(start)).Msg("resume done")
	return out, err
}

// Indicators fetches each symbol's detail page and extracts its resume and
// indicator groups. Symbols whose page could not be fetched are omitted.
func (s *stockService) Indicators(ctx context.Context, symbols []string) (out []models.StockIndicatorReport, err error) {
	defer recoverInternal("indicators", &err)
	start := time.Now()

	out, err = fanOut(ctx, "indicators", s.parallelism, symbols, func(ctx context.Context, symbol string) []models.StockIndicatorReport {
		html, ok := s.fetcher.DetailPage(ctx, symbol)
		if !ok {
			logger.L().Debug().Str("symbol", symbol).Msg("detail page unavailable, skipping")
			return nil
		}
		resume, groups := s.extractor.Extract(html)
		return []models.StockIndicatorReport{{
			Stock:      symbol,
			URL:        s.fetcher.StockURL(symbol),
			Resume:     resume,
			Indicators: groups,
		}}
	})

	logger.L().Info().Int("symbols", len(symbols)).Int("results", len(out)).Dur("elapsed", time.Since(start)).Msg("indicators done")
	return out, err
}

// PaymentDates returns the payment calendar for query. Without stocks a
// single unfiltered lookup is made; otherwise one lookup per ticker, with
// results concatenated in ticker order. query is expected to be normalized
// already (see models.PaymentDatesQuery.Normalize).
func (s *stockService) PaymentDates(ctx context.Context, query models.PaymentDatesQuery) (out []models.EarningsRecord, err error) {
	defer recoverInternal("payment_dates", &err)
	start := time.Now()
	baseURL := s.fetcher.BaseURL()

	if len(query.Stocks) == 0 {
		payload := s.fetcher.Earnings(ctx, statusinvest.EarningsRequest{Start: query.InitialDate, End: query.FinalDate})
		out = extract.MapEarnings(payload, baseURL)
	} else {
		out, err = fanOut(ctx, "payment_dates", s.parallelism, query.Stocks, func(ctx context.Context, ticker string) []models.EarningsRecord {
			payload := s.fetcher.Earnings(ctx, statusinvest.EarningsRequest{
				Start:  query.InitialDate,
				End:    query.FinalDate,
				Symbol: strings.ToUpper(ticker),
			})
			return extract.MapEarnings(payload, baseURL)
		})
	}

	logger.L().Info().Str("initial_date", query.InitialDate).Str("final_date", query.FinalDate).
		Int("stocks", len(query.Stocks)).Int("results", len(out)).Dur("elapsed", time.Since(start)).Msg("payment dates done")
	return out, err
}

func (s *stockService) toSummary(item statusinvest.RawQuote) models.QuoteSummary {
	return models.QuoteSummary{
		ID:          item.ID,
		Type:        models.ClassifyQuoteType(item.Type),
		Code:        item.Code,
		Name:        item.Name,
		Price:       models.Number(item.Price.Float()),
		Variation:   models.Number(item.Variation.Float()),
		VariationUp: item.VariationUp,
		URL:         item.URL,
		ImageURL:    s.fetcher.ImageURL(item.ParentID),
	}
}
