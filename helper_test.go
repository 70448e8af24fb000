package stockfolio

import (
	"testing"

	"github.com/etnz/stockfolio/date"
)

// on is a helper for test to create dates from const.
func on(s string) date.Date { return date.MustParse(s) }

// samplePortfolio returns the fintual and platanus portfolio.
func samplePortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p := NewPortfolio()
	for _, s := range []*Stock{
		MustNewStock("fintual", map[string]int{"2024-01-01": 100, "2024-12-31": 180}),
		MustNewStock("platanus", map[string]int{"2024-01-01": 1200, "2024-12-31": 1350}),
	} {
		if err := p.AddAsset(s); err != nil {
			t.Fatalf("AddAsset(%q) error = %v", s.Name(), err)
		}
	}
	return p
}

// fixedAsset is an Asset that is not a Stock, worth the same every day.
type fixedAsset struct {
	name  string
	price float64
}

func (f fixedAsset) Name() string              { return f.name }
func (f fixedAsset) PriceAt(date.Date) float64 { return f.price }
