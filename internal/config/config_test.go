package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseTaxRates(t *testing.T) {
	t.Parallel()

	rates := parseTaxRates("canada:1.13, united_states:1.08")
	if len(rates) != 2 {
		t.Fatalf("len=%d, expected 2", len(rates))
	}
	if !rates["canada"].Equal(decimal.RequireFromString("1.13")) {
		t.Fatalf("canada=%s, expected 1.13", rates["canada"])
	}
	if !rates["united_states"].Equal(decimal.RequireFromString("1.08")) {
		t.Fatalf("united_states=%s, expected 1.08", rates["united_states"])
	}
}

func TestParseTaxRates_SkipsMalformed(t *testing.T) {
	t.Parallel()

	rates := parseTaxRates("canada:1.13,nonsense,mexico:abc,:1.16")
	if len(rates) != 1 {
		t.Fatalf("len=%d, expected only the valid entry: %v", len(rates), rates)
	}
}

func TestTaxRate_DefaultsToOne(t *testing.T) {
	t.Parallel()

	cfg := Config{TaxRates: parseTaxRates("canada:1.13")}
	if !cfg.TaxRate("atlantis").Equal(decimal.NewFromInt(1)) {
		t.Fatalf("unconfigured country rate=%s, expected 1", cfg.TaxRate("atlantis"))
	}
	if !cfg.TaxRate("canada").Equal(decimal.RequireFromString("1.13")) {
		t.Fatalf("canada rate=%s, expected 1.13", cfg.TaxRate("canada"))
	}
}
