package models

import (
	"math"
	"strconv"
)

// Number is a float64 that may be unavailable.
//
// Values the upstream page did not provide (missing DOM anchor, malformed
// text) are carried as NaN. encoding/json refuses NaN and ±Inf, so those are
// written as JSON null instead.
//
// swagger:model Number
type Number float64

// Unavailable returns the NaN marker used for missing values.
func Unavailable() Number {
	return Number(math.NaN())
}

// IsAvailable reports whether n holds a finite value.
func (n Number) IsAvailable() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float returns the underlying value (NaN when unavailable).
func (n Number) Float() float64 {
	return float64(n)
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.IsAvailable() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(n), 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler; null decodes to NaN.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Unavailable()
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
