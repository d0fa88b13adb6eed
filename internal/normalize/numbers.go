package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	currencyMarker   = "R$"
	percentMarker    = "%"
	thousandsSep     = "."
	decimalSep       = ","
	canonicalDecimal = "."
)

// leadingNumber matches the longest numeric prefix of a string, the same
// portion a lenient float parser would consume before hitting garbage.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseCurrency converts Brazilian currency text ("R$ 1.234,56") into a float.
//
// Behavior:
//   - Removes the first "R$" marker.
//   - Removes the first "." (thousands separator).
//   - Replaces the first "," (decimal separator) with ".".
//   - Parses the leading numeric prefix of what remains.
//
// Only the first thousands separator is removed, so values with more than one
// thousands group ("1.234.567,89") parse as 1234.567. Text without digits
// yields NaN.
func ParseCurrency(text string) float64 {
	s := strings.Replace(text, currencyMarker, "", 1)
	s = strings.Replace(s, thousandsSep, "", 1)
	s = strings.Replace(s, decimalSep, canonicalDecimal, 1)
	return parseLeadingFloat(s)
}

// ParsePercentage converts percentage text ("-3,21%") into a float (-3.21).
// Text without digits yields NaN.
func ParsePercentage(text string) float64 {
	s := strings.Replace(text, percentMarker, "", 1)
	s = strings.Replace(s, decimalSep, canonicalDecimal, 1)
	return parseLeadingFloat(s)
}

// ParsePlainDecimal converts a decimal with a comma separator ("0,35") into a
// float. No thousands separator handling is applied.
func ParsePlainDecimal(text string) float64 {
	s := strings.Replace(text, decimalSep, canonicalDecimal, 1)
	return parseLeadingFloat(s)
}

func parseLeadingFloat(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out of range values keep the ±Inf strconv reports
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}
