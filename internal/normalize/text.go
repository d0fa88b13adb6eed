package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelCase turns a human label such as "INDICADORES DE VALUATION" into
// "indicadoresDeValuation". Accented letters are kept; anything that is not a
// letter or digit separates words, as do lower-to-upper and letter/digit
// boundaries.
func CamelCase(label string) string {
	words := splitWords(label)
	if len(words) == 0 {
		return ""
	}

	// Casers keep state and are not safe to share across goroutines.
	lower := cases.Lower(language.BrazilianPortuguese)
	title := cases.Title(language.BrazilianPortuguese)

	var b strings.Builder
	b.WriteString(lower.String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
