package stockfolio

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage: 17.69 means 17.69%.
type Percent float64

// round2 rounds to 2 decimals, half away from zero.
func round2(v float64) Percent {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// decimal does not represent them.
		return Percent(v)
	}
	return Percent(decimal.NewFromFloat(v).Round(2).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
