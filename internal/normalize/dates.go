package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Mode selects how strictly ToISO treats its input.
type Mode int

const (
	// Lenient reformats already-fetched upstream dates on a best-effort basis.
	// Out-of-range days and months roll over (31/02/2024 -> 2024-03-02).
	Lenient Mode = iota
	// Strict requires exactly DD/MM/YYYY with a day that exists in that month.
	Strict
)

const (
	// ISOLayout is the canonical calendar date representation.
	ISOLayout = "2006-01-02"
	// BRLayout is the day-first layout used by the upstream source.
	BRLayout = "02/01/2006"
)

// ErrInvalidDateFormat is returned when a date string cannot be read in the
// expected layout.
var ErrInvalidDateFormat = errors.New("invalid date format")

var (
	strictBR  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	lenientBR = regexp.MustCompile(`^\s*(\d{1,2})/(\d{1,2})/(\d{4})\s*$`)
	strictISO = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ToISO converts a DD/MM/YYYY date into YYYY-MM-DD.
//
// Parameters:
//   - date (string): day-first date text.
//   - mode (Mode): Strict for caller-supplied input, Lenient for upstream data.
//
// Returns:
//   - string: the ISO date.
//   - error: ErrInvalidDateFormat (wrapped with the input) when the text is
//     not a date in the requested mode.
func ToISO(date string, mode Mode) (string, error) {
	if mode == Strict {
		if !strictBR.MatchString(date) {
			return "", fmt.Errorf("%w: %q, expected DD/MM/YYYY", ErrInvalidDateFormat, date)
		}
		t, err := time.Parse(BRLayout, date)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, date, err)
		}
		return t.Format(ISOLayout), nil
	}

	m := lenientBR.FindStringSubmatch(date)
	if m == nil {
		return "", fmt.Errorf("%w: %q, expected DD/MM/YYYY", ErrInvalidDateFormat, date)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(ISOLayout), nil
}

// ValidateISO checks that date is exactly YYYY-MM-DD and names a real day.
func ValidateISO(date string) error {
	if !strictISO.MatchString(date) {
		return fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDateFormat, date)
	}
	if _, err := time.Parse(ISOLayout, date); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, date, err)
	}
	return nil
}
