package stockfolio

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/etnz/stockfolio/date"
)

var (
	// ErrInvalidPrice is returned (wrapped) when a stock is given a negative or non finite price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrDuplicateDate is returned (wrapped) when two price keys denote the same day.
	ErrDuplicateDate = errors.New("duplicate date")
)

// Asset is anything a Portfolio can hold: a named thing with a price on a given day.
type Asset interface {
	Name() string
	// PriceAt returns the price on that exact day, or 0 if there is none.
	PriceAt(on date.Date) float64
}

// DateKey is the set of types accepted as price keys when creating a Stock.
type DateKey interface{ date.Date | string }

// Number is the set of types accepted as prices when creating a Stock.
type Number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64
}

// Stock is a named series of daily prices.
//
// A Stock is immutable once created.
type Stock struct {
	name   string
	prices date.History[float64]
}

var _ Asset = (*Stock)(nil)

// NewStock creates a Stock from a set of daily prices.
//
// Keys are either dates or strings parsed with [date.Parse]. Values are
// converted to float64 and must be finite and non negative. Two keys parsed
// to the same day, like "2024-01-01" and "2024-1-1", are an error.
func NewStock[K DateKey, V Number](name string, prices map[K]V) (*Stock, error) {
	s := &Stock{name: name}
	seen := make(map[date.Date]K, len(prices))
	for k, v := range prices {
		on, err := toDate(k)
		if err != nil {
			return nil, fmt.Errorf("stock %q: %w", name, err)
		}
		if prev, exists := seen[on]; exists {
			first, second := fmt.Sprint(prev), fmt.Sprint(k)
			if second < first {
				first, second = second, first
			}
			return nil, fmt.Errorf("stock %q: %w %s: keys %q and %q", name, ErrDuplicateDate, on, first, second)
		}
		seen[on] = k
		price := toFloat(v)
		if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			return nil, fmt.Errorf("stock %q: %w %v on %s", name, ErrInvalidPrice, price, on)
		}
		s.prices.Append(on, price)
	}
	return s, nil
}

// MustNewStock is like NewStock but panics on error.
func MustNewStock[K DateKey, V Number](name string, prices map[K]V) *Stock {
	s, err := NewStock(name, prices)
	if err != nil {
		panic(err.Error())
	}
	return s
}

func toDate[K DateKey](k K) (date.Date, error) {
	switch v := any(k).(type) {
	case date.Date:
		return v, nil
	case string:
		return date.Parse(v)
	default:
		panic("unsupported type")
	}
}

func toFloat[V Number](value V) float64 {
	switch v := any(value).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		panic("unsupported type")
	}
}

// Name returns the stock name.
func (s *Stock) Name() string { return s.name }

// PriceAt returns the price on that exact day.
//
// A day without a price is worth 0. There is no interpolation from the
// surrounding days.
func (s *Stock) PriceAt(on date.Date) float64 {
	p, _ := s.prices.Get(on)
	return p
}

// PriceOn is like PriceAt for a day given as a string.
func (s *Stock) PriceOn(on string) (float64, error) {
	d, err := date.Parse(on)
	if err != nil {
		return 0, err
	}
	return s.PriceAt(d), nil
}

// Prices returns all known prices in chronological order.
func (s *Stock) Prices() iter.Seq2[date.Date, float64] { return s.prices.Values() }

// Len returns the number of known prices.
func (s *Stock) Len() int { return s.prices.Len() }
