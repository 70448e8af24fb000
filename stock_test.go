package stockfolio

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/stockfolio/date"
)

func TestNewStock(t *testing.T) {
	s, err := NewStock("fintual", map[string]float64{"2024-01-01": 100, "2024-12-31": 180.5})
	if err != nil {
		t.Fatalf("NewStock() error = %v", err)
	}
	if s.Name() != "fintual" {
		t.Errorf("Name() = %q, want %q", s.Name(), "fintual")
	}
	if got := s.PriceAt(on("2024-12-31")); got != 180.5 {
		t.Errorf("PriceAt(2024-12-31) = %v, want 180.5", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %v, want 2", s.Len())
	}
}

func TestNewStock_Keys(t *testing.T) {
	// dates and permissive strings normalize to the same canonical day.
	a := MustNewStock("a", map[date.Date]int64{on("2024-03-05"): 7})
	b := MustNewStock("b", map[string]int{"2024-3-5": 7})
	for _, s := range []*Stock{a, b} {
		if got := s.PriceAt(date.New(2024, 3, 5)); got != 7 {
			t.Errorf("%s.PriceAt(2024-03-05) = %v, want 7", s.Name(), got)
		}
	}
}

func TestNewStock_Errors(t *testing.T) {
	if _, err := NewStock("bad", map[string]int{"2024-01-01": 1, "31/12/2024": 2}); !errors.Is(err, ErrDateParse) {
		t.Errorf("NewStock(bad key) error = %v, want ErrDateParse", err)
	}
	// the same day written twice would keep a random one of the prices.
	for i := 0; i < 20; i++ {
		_, err := NewStock("twice", map[string]float64{"2024-01-01": 100, "2024-1-1": 999})
		if !errors.Is(err, ErrDuplicateDate) {
			t.Fatalf("NewStock(same day twice) error = %v, want ErrDuplicateDate", err)
		}
		if want := `stock "twice": duplicate date 2024-01-01: keys "2024-01-01" and "2024-1-1"`; err.Error() != want {
			t.Fatalf("NewStock(same day twice) error = %q, want %q", err, want)
		}
	}
	for _, price := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NewStock("bad", map[string]float64{"2024-01-01": price}); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("NewStock(price %v) error = %v, want ErrInvalidPrice", price, err)
		}
	}
}

func TestStock_PriceAt_Missing(t *testing.T) {
	s := MustNewStock("fintual", map[string]int{"2024-01-01": 100, "2024-12-31": 180})

	// no interpolation: a day between two known prices is worth exactly 0.
	if got := s.PriceAt(on("2024-06-30")); got != 0.0 {
		t.Errorf("PriceAt(2024-06-30) = %v, want 0", got)
	}
	if got := MustNewStock("empty", map[string]int{}).PriceAt(on("2024-01-01")); got != 0.0 {
		t.Errorf("empty stock PriceAt() = %v, want 0", got)
	}
}

func TestStock_PriceOn(t *testing.T) {
	s := MustNewStock("fintual", map[string]int{"2024-01-01": 100})

	got, err := s.PriceOn("2024-1-1")
	if err != nil || got != 100 {
		t.Errorf("PriceOn(2024-1-1) = %v, %v want 100, nil", got, err)
	}
	if _, err := s.PriceOn("yesterday"); !errors.Is(err, ErrDateParse) {
		t.Errorf("PriceOn(yesterday) error = %v, want ErrDateParse", err)
	}
}

func TestStock_Prices(t *testing.T) {
	s := MustNewStock("fintual", map[string]int{"2024-12-31": 180, "2024-01-01": 100, "2024-06-30": 150})
	var days []date.Date
	var prices []float64
	for d, p := range s.Prices() {
		days, prices = append(days, d), append(prices, p)
	}
	if len(days) != 3 || days[0] != on("2024-01-01") || days[2] != on("2024-12-31") {
		t.Errorf("Prices() days = %v, want chronological order", days)
	}
	if prices[1] != 150 {
		t.Errorf("Prices() = %v, want 150 in the middle", prices)
	}
}
