package renderer

import (
	"strings"

	"github.com/etnz/stockfolio"
)

// cellEscaper keeps text inside a single markdown table cell.
var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// Review is a struct to represent the review data for rendering.
//
// Amounts are already formatted.
type Review struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Days   int           `json:"days"`
	Period string        `json:"period"`
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Profit string        `json:"profit"`
	Return string        `json:"return"`
	Assets []AssetReview `json:"assets"`
}

// AssetReview holds the prices of a single asset.
type AssetReview struct {
	Name   string `json:"name"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Change string `json:"change"`
}

// NewReview formats r, amounts are displayed in currency.
func NewReview(r *stockfolio.Review, currency string) *Review {
	m := func(v float64) stockfolio.Money { return stockfolio.M(v, currency) }
	res := &Review{
		From:   r.Range.From.String(),
		To:     r.Range.To.String(),
		Days:   r.Range.Days(),
		Period: r.Range.Name(),
		Start:  m(r.Start).String(),
		End:    m(r.End).String(),
		Profit: m(r.Profit).SignedString(),
		Return: r.Return.SignedString(),
	}
	for _, a := range r.Assets {
		res.Assets = append(res.Assets, AssetReview{
			Name:   cellEscaper.Replace(a.Name),
			Start:  m(a.Start).String(),
			End:    m(a.End).String(),
			Change: m(a.Change()).SignedString(),
		})
	}
	return res
}
