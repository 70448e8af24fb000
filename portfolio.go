package stockfolio

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/etnz/stockfolio/date"
)

var (
	// ErrInvalidAsset is returned (wrapped) when adding something that cannot be priced.
	ErrInvalidAsset = errors.New("invalid asset")
	// ErrInvalidRange is returned (wrapped) when a range does not end strictly after it starts.
	ErrInvalidRange = date.ErrInvalidRange
	// ErrDateParse is returned (wrapped) when a date cannot be parsed.
	ErrDateParse = date.ErrParse
)

// daysPerYear is the length of the year used to annualize returns.
const daysPerYear = 365.0

// Portfolio is an ordered collection of assets.
//
// The Portfolio keeps a reference to each asset it is given, it is not
// safe for concurrent use.
type Portfolio struct {
	assets []Asset
}

// NewPortfolio returns an empty Portfolio.
func NewPortfolio() *Portfolio { return &Portfolio{} }

// AddAsset appends an asset to the portfolio.
//
// Adding the same asset twice is allowed, it is then counted twice.
func (p *Portfolio) AddAsset(a Asset) error {
	if isNil(a) {
		return fmt.Errorf("%w: %T is nil", ErrInvalidAsset, a)
	}
	p.assets = append(p.assets, a)
	return nil
}

// isNil reports whether a is nil, or an interface holding a nil pointer.
func isNil(a Asset) bool {
	if a == nil {
		return true
	}
	switch v := reflect.ValueOf(a); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Assets returns the assets in insertion order.
func (p *Portfolio) Assets() []Asset { return slices.Clone(p.assets) }

// Len returns the number of assets held.
func (p *Portfolio) Len() int { return len(p.assets) }

// ValueAt returns the sum of all asset prices on that day.
func (p *Portfolio) ValueAt(on date.Date) float64 {
	total := 0.0
	for _, a := range p.assets {
		total += a.PriceAt(on)
	}
	return total
}

// Profit returns the change in value of the portfolio between start and end.
//
// end must be strictly after start.
func (p *Portfolio) Profit(start, end date.Date) (float64, error) {
	r, err := date.NewRange(start, end)
	if err != nil {
		return 0, err
	}
	return p.profit(r), nil
}

func (p *Portfolio) profit(r date.Range) float64 {
	return p.ValueAt(r.To) - p.ValueAt(r.From)
}

// AnnualizedReturn returns the compounded return between start and end, scaled
// to a 365 days year, in percent rounded to 2 decimals.
//
// A portfolio without value on start has a return of 0. A growth too steep to
// be annualized in a float64, like x100 in a day, returns +Inf.
// end must be strictly after start.
func (p *Portfolio) AnnualizedReturn(start, end date.Date) (Percent, error) {
	r, err := date.NewRange(start, end)
	if err != nil {
		return 0, err
	}
	return p.annualizedReturn(r), nil
}

func (p *Portfolio) annualizedReturn(r date.Range) Percent {
	initial, final := p.ValueAt(r.From), p.ValueAt(r.To)
	if initial == 0 {
		return 0
	}
	total := (final - initial) / initial
	annualized := math.Pow(1+total, daysPerYear/float64(r.Days())) - 1
	return round2(annualized * 100)
}

// ProfitBetween is like Profit with dates parsed by [date.Parse].
func (p *Portfolio) ProfitBetween(start, end string) (float64, error) {
	r, err := date.ParseRange(start, end)
	if err != nil {
		return 0, err
	}
	return p.profit(r), nil
}

// AnnualizedReturnBetween is like AnnualizedReturn with dates parsed by [date.Parse].
func (p *Portfolio) AnnualizedReturnBetween(start, end string) (Percent, error) {
	r, err := date.ParseRange(start, end)
	if err != nil {
		return 0, err
	}
	return p.annualizedReturn(r), nil
}
