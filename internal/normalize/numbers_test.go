package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{name: "currency with thousands", in: "R$ 1.234,56", want: 1234.56},
		{name: "currency without thousands", in: "R$ 38,45", want: 38.45},
		{name: "bare decimal", in: "7,10", want: 7.10},
		{name: "negative", in: "-0,52", want: -0.52},
		{name: "surrounding whitespace", in: "  R$12,00  ", want: 12},
		{name: "trailing garbage ignored", in: "12,34%", want: 12.34},
		// only the first thousands separator is removed
		{name: "multiple thousands groups", in: "1.234.567,89", want: 1234.567},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ParseCurrency(tc.in), 1e-9)
		})
	}
}

func TestParsePercentage(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{in: "-3,21%", want: -3.21},
		{in: "0,00%", want: 0},
		{in: "12,5 %", want: 12.5},
		{in: "+4,7%", want: 4.7},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, ParsePercentage(tc.in), 1e-9, tc.in)
	}
}

func TestParsePlainDecimal(t *testing.T) {
	assert.InDelta(t, 0.35, ParsePlainDecimal("0,35"), 1e-9)
	assert.InDelta(t, 5.83, ParsePlainDecimal("5,83"), 1e-9)
	assert.InDelta(t, -1.2, ParsePlainDecimal("-1,2"), 1e-9)
}

func TestParse_MalformedYieldsNaN(t *testing.T) {
	inputs := []string{"—", "", "-", "R$", "%", "N/A", "-%"}
	for _, in := range inputs {
		assert.True(t, math.IsNaN(ParseCurrency(in)), "ParseCurrency(%q)", in)
		assert.True(t, math.IsNaN(ParsePercentage(in)), "ParsePercentage(%q)", in)
		assert.True(t, math.IsNaN(ParsePlainDecimal(in)), "ParsePlainDecimal(%q)", in)
	}
}
