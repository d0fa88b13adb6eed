package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/statusinvest"
)

const testBase = "https://statusinvest.test"

type stubFetcher struct {
	mu       sync.Mutex
	quotes   map[string][]statusinvest.RawQuote
	pages    map[string]string
	earnings map[string]*statusinvest.EarningsPayload
	requests []statusinvest.EarningsRequest
	searched []string
	panicOn  string
}

func (s *stubFetcher) SearchQuotes(_ context.Context, symbol string) []statusinvest.RawQuote {
	s.mu.Lock()
	s.searched = append(s.searched, symbol)
	s.mu.Unlock()
	if symbol == s.panicOn {
		panic("search exploded")
	}
	return s.quotes[symbol]
}

func (s *stubFetcher) DetailPage(_ context.Context, symbol string) (string, bool) {
	html, ok := s.pages[symbol]
	return html, ok
}

func (s *stubFetcher) Earnings(_ context.Context, req statusinvest.EarningsRequest) *statusinvest.EarningsPayload {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return s.earnings[req.Symbol]
}

func (s *stubFetcher) BaseURL() string               { return testBase }
func (s *stubFetcher) StockURL(symbol string) string { return testBase + "/acoes/" + symbol }
func (s *stubFetcher) ImageURL(parentID int64) string {
	return testBase + "/img/company/avatar/" + strconv.FormatInt(parentID, 10) + ".jpg?v=214"
}

func quote(id, parent int64, code string, typ int, price, variation string) statusinvest.RawQuote {
	return statusinvest.RawQuote{
		ID: id, ParentID: parent, Code: code, Name: code + " SA", Type: typ,
		Price:     statusinvest.LocaleNumber{Text: price},
		Variation: statusinvest.LocaleNumber{Text: variation},
		URL:       "/acoes/" + code,
	}
}

func TestResume(t *testing.T) {
	f := &stubFetcher{quotes: map[string][]statusinvest.RawQuote{
		"PETR4": {quote(1, 408, "PETR4", 1, "38,45", "-1,23")},
		"ITUB":  {quote(2, 20, "ITUB3", 1, "30,00", "0,50"), quote(3, 20, "ITUB4", 77, "33,10", "1,00")},
	}}

	for _, parallelism := range []int{1, 4} {
		svc := NewStockService(f, WithParallelism(parallelism))
		out, err := svc.Resume(context.Background(), []string{"PETR4", "NOPE", "ITUB"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("want 3 summaries, got %d: %+v", len(out), out)
		}
		first := out[0]
		if first.Code != "PETR4" || first.Type != "ação" || first.ID != 1 {
			t.Fatalf("unexpected first summary: %+v", first)
		}
		if math.Abs(first.Price.Float()-38.45) > 1e-9 || math.Abs(first.Variation.Float()+1.23) > 1e-9 {
			t.Fatalf("unexpected numbers: %+v", first)
		}
		if first.ImageURL != testBase+"/img/company/avatar/408.jpg?v=214" {
			t.Fatalf("unexpected image url: %s", first.ImageURL)
		}
		if out[1].Code != "ITUB3" || out[2].Code != "ITUB4" {
			t.Fatalf("order not preserved: %+v", out)
		}
		if out[2].Type != "77 unknown" {
			t.Fatalf("unmapped type should be kept verbatim, got %q", out[2].Type)
		}
	}
}

func TestResume_NothingFound(t *testing.T) {
	svc := NewStockService(&stubFetcher{})
	out, err := svc.Resume(context.Background(), []string{"XXXX9"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", out)
	}
}

func TestResume_BlankSymbolsSkipped(t *testing.T) {
	f := &stubFetcher{}
	svc := NewStockService(f)
	if _, err := svc.Resume(context.Background(), []string{" ", "", " VALE3 "}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(f.searched) != 1 || f.searched[0] != "VALE3" {
		t.Fatalf("want a single trimmed lookup, got %v", f.searched)
	}
}

func TestResume_PanicBecomesInternalError(t *testing.T) {
	for _, parallelism := range []int{1, 3} {
		f := &stubFetcher{panicOn: "BOOM3"}
		svc := NewStockService(f, WithParallelism(parallelism))
		out, err := svc.Resume(context.Background(), []string{"PETR4", "BOOM3"})
		if out != nil {
			t.Fatalf("want nil output on failure, got %+v", out)
		}
		var ie *InternalError
		if !errors.As(err, &ie) || !errors.Is(err, ErrInternal) {
			t.Fatalf("want *InternalError wrapping ErrInternal, got %v", err)
		}
		if ie.Op != "resume" {
			t.Fatalf("unexpected op: %s", ie.Op)
		}
	}
}

const page = `<div title="Valor atual do ativo"><strong class="value">10,50</strong></div>
<div class="indicator-today-container"><div><div class="indicators">
<strong class="uppercase">Indicadores de Valuation</strong>
<div class="item"><h3 class="title">P/L</h3><strong class="value">4,12</strong></div>
</div></div></div>`

func TestIndicators(t *testing.T) {
	f := &stubFetcher{pages: map[string]string{"petr4": page, "vale3": "<html></html>"}}
	svc := NewStockService(f)

	out, err := svc.Indicators(context.Background(), []string{"petr4", "missing", "vale3"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("failed fetch should be omitted, got %d reports", len(out))
	}

	r := out[0]
	if r.Stock != "petr4" || r.URL != testBase+"/acoes/petr4" {
		t.Fatalf("unexpected report header: %+v", r)
	}
	if math.Abs(r.Resume.Price.Value.Float()-10.5) > 1e-9 {
		t.Fatalf("unexpected price: %v", r.Resume.Price.Value)
	}
	if !math.IsNaN(r.Resume.Min52Weeks.Value.Float()) {
		t.Fatalf("missing anchor should be NaN")
	}
	if len(r.Indicators) != 1 || r.Indicators[0].Title != "indicadoresDeValuation" {
		t.Fatalf("unexpected groups: %+v", r.Indicators)
	}

	empty := out[1]
	if empty.Stock != "vale3" || len(empty.Indicators) != 0 || !math.IsNaN(empty.Resume.Price.Value.Float()) {
		t.Fatalf("page without anchors should yield an all-NaN report: %+v", empty)
	}
}

func earningsFor(codes ...string) *statusinvest.EarningsPayload {
	p := &statusinvest.EarningsPayload{}
	for _, c := range codes {
		p.DatePayment = append(p.DatePayment, statusinvest.RawEarningsItem{
			Code: c, ResultAbsoluteValue: "0,50", DateCom: "02/01/2024", PaymentDividend: "15/01/2024",
			EarningType: "Dividendo", URLClear: "/acoes/" + c,
		})
	}
	return p
}

func TestPaymentDates_OneFetchPerTicker(t *testing.T) {
	f := &stubFetcher{earnings: map[string]*statusinvest.EarningsPayload{
		"PETR4": earningsFor("PETR4"),
		"VALE3": earningsFor("VALE3", "VALE3"),
	}}
	svc := NewStockService(f)

	q := models.PaymentDatesQuery{InitialDate: "2024-01-01", FinalDate: "2024-01-31", Stocks: []string{"PETR4", "vale3"}}
	out, err := svc.PaymentDates(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(f.requests) != 2 {
		t.Fatalf("want 2 fetches, got %d", len(f.requests))
	}
	if f.requests[0].Symbol != "PETR4" || f.requests[1].Symbol != "VALE3" {
		t.Fatalf("tickers should be upper-cased in order: %+v", f.requests)
	}
	for _, r := range f.requests {
		if r.Start != "2024-01-01" || r.End != "2024-01-31" {
			t.Fatalf("unexpected window: %+v", r)
		}
	}
	if len(out) != 3 || out[0].Code != "PETR4" || out[1].Code != "VALE3" {
		t.Fatalf("unexpected records: %+v", out)
	}
	if out[0].DateCom != "2024-01-02" || out[0].PaymentDate != "2024-01-15" || out[0].URL != testBase+"/acoes/PETR4" {
		t.Fatalf("unexpected mapping: %+v", out[0])
	}
}

func TestPaymentDates_Unfiltered(t *testing.T) {
	f := &stubFetcher{earnings: map[string]*statusinvest.EarningsPayload{"": earningsFor("BBAS3", "TAEE11")}}
	svc := NewStockService(f, WithParallelism(8))

	out, err := svc.PaymentDates(context.Background(), models.PaymentDatesQuery{InitialDate: "2024-01-01", FinalDate: "2024-01-31"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(f.requests) != 1 || f.requests[0].Symbol != "" {
		t.Fatalf("want a single unfiltered fetch, got %+v", f.requests)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 records, got %d", len(out))
	}
}

func TestPaymentDates_UpstreamDown(t *testing.T) {
	svc := NewStockService(&stubFetcher{})
	out, err := svc.PaymentDates(context.Background(), models.PaymentDatesQuery{
		InitialDate: "2024-01-01", FinalDate: "2024-01-31", Stocks: []string{"PETR4"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", out)
	}
}
