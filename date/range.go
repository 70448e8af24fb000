package date

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned (wrapped) when a range does not end strictly after it starts.
var ErrInvalidRange = errors.New("invalid date range")

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
//
// It fails if to is not strictly after from: a range over a single day, or a
// reversed one, has no elapsed time to compute anything over.
func NewRange(from, to Date) (Range, error) {
	if !to.After(from) {
		return Range{}, fmt.Errorf("%w: end date %s must be after start date %s", ErrInvalidRange, to, from)
	}
	return Range{From: from, To: to}, nil
}

// ParseRange parses both boundaries with Parse, then validates them like NewRange.
func ParseRange(from, to string) (Range, error) {
	f, err := Parse(from)
	if err != nil {
		return Range{}, fmt.Errorf("start date: %w", err)
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, fmt.Errorf("end date: %w", err)
	}
	return NewRange(f, t)
}

// PeriodRange returns the standard period that contains d, e.g. the whole year for Yearly.
func PeriodRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Days returns the number of elapsed calendar days between From and To.
func (r Range) Days() int { return r.To.Sub(r.From) }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// Period returns the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if PeriodRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Name the period range
func (r Range) Name() string {
	p, ok := r.Period()
	if ok {
		return p.String()
	}
	return "special"
}
