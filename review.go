package stockfolio

import "github.com/etnz/stockfolio/date"

// Review holds the performance of a portfolio over a range of dates.
type Review struct {
	Range      date.Range
	Start, End float64 // portfolio value on Range.From and Range.To
	Assets     []AssetReview
	Profit     float64
	Return     Percent // annualized
}

// AssetReview is the price of a single asset on both ends of a Review.
type AssetReview struct {
	Name       string
	Start, End float64
}

// Change returns the price change of the asset.
func (a AssetReview) Change() float64 { return a.End - a.Start }

// NewReview computes the Review of the portfolio between start and end.
//
// end must be strictly after start.
func (p *Portfolio) NewReview(start, end date.Date) (*Review, error) {
	r, err := date.NewRange(start, end)
	if err != nil {
		return nil, err
	}
	rev := &Review{
		Range:  r,
		Start:  p.ValueAt(r.From),
		End:    p.ValueAt(r.To),
		Profit: p.profit(r),
		Return: p.annualizedReturn(r),
	}
	for _, a := range p.assets {
		rev.Assets = append(rev.Assets, AssetReview{
			Name:  a.Name(),
			Start: a.PriceAt(r.From),
			End:   a.PriceAt(r.To),
		})
	}
	return rev, nil
}
