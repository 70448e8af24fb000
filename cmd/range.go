package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/stockfolio/date"
)

// rangeFlags holds the flags common to commands working on a range of dates.
type rangeFlags struct {
	start  string
	end    string
	period string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.start, "s", "", "Start date of the range (YYYY-MM-DD)")
	f.StringVar(&r.end, "e", date.Today().String(), "End date of the range (YYYY-MM-DD)")
	f.StringVar(&r.period, "period", "", "Use the standard period (week, month, quarter, year) containing the end date instead of a start date")
}

// Range returns the range selected by the flags.
func (r *rangeFlags) Range() (date.Range, error) {
	if r.period == "" {
		return date.ParseRange(r.start, r.end)
	}
	if r.start != "" {
		return date.Range{}, fmt.Errorf("-s and -period flags cannot be used together")
	}
	end, err := date.Parse(r.end)
	if err != nil {
		return date.Range{}, fmt.Errorf("end date: %w", err)
	}
	p, err := date.ParsePeriod(r.period)
	if err != nil {
		return date.Range{}, err
	}
	pr := date.PeriodRange(end, p)
	return date.NewRange(pr.From, pr.To)
}
