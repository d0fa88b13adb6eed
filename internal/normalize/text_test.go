package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"INDICADORES DE VALUATION":       "indicadoresDeValuation",
		"Indicadores de rentabilidade":   "indicadoresDeRentabilidade",
		"INDICADORES DE EFICIÊNCIA":      "indicadoresDeEficiência",
		"  Indicadores   de  crescimento": "indicadoresDeCrescimento",
		"EV/EBITDA":                      "evEbitda",
		"valorPatrimonial":               "valorPatrimonial",
		"CAGR receitas 5 anos":           "cagrReceitas5Anos",
		"":                               "",
		" -- ":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CamelCase(in), "CamelCase(%q)", in)
	}
}
