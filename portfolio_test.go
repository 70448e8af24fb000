package stockfolio

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/stockfolio/date"
)

func TestPortfolio_Sample(t *testing.T) {
	p := samplePortfolio(t)

	profit, err := p.ProfitBetween("2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("ProfitBetween() error = %v", err)
	}
	if profit != 230.0 {
		t.Errorf("ProfitBetween() = %v, want 230", profit)
	}

	ret, err := p.AnnualizedReturnBetween("2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("AnnualizedReturnBetween() error = %v", err)
	}
	if ret != 17.69 {
		t.Errorf("AnnualizedReturnBetween() = %v, want 17.69", float64(ret))
	}
	if ret.String() != "17.69%" {
		t.Errorf("String() = %q, want %q", ret.String(), "17.69%")
	}
}

func TestPortfolio_Profit(t *testing.T) {
	p := samplePortfolio(t)
	p.AddAsset(MustNewStock("cencosud", map[string]float64{"2024-06-30": 50, "2024-12-31": 40}))

	testCases := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"year", "2024-01-01", "2024-12-31", 270}, // cencosud is missing on start and worth 40 on end
		{"missing start", "2024-06-30", "2024-12-31", 1570 - 50},
		{"missing both", "2024-02-01", "2024-03-01", 0},
		{"loss", "2024-06-30", "2024-07-01", -50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := on(tc.start), on(tc.end)
			got, err := p.Profit(start, end)
			if err != nil {
				t.Fatalf("Profit() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Profit() = %v, want %v", got, tc.want)
			}
			if want := p.ValueAt(end) - p.ValueAt(start); got != want {
				t.Errorf("Profit() = %v, want ValueAt(end)-ValueAt(start) = %v", got, want)
			}
		})
	}
}

func TestPortfolio_InvalidRange(t *testing.T) {
	p := samplePortfolio(t)
	for _, tc := range []struct {
		name       string
		start, end string
	}{
		{"equal", "2024-01-01", "2024-01-01"},
		{"reversed", "2024-12-31", "2024-01-01"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := p.Profit(on(tc.start), on(tc.end)); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Profit() error = %v, want ErrInvalidRange", err)
			}
			if _, err := p.AnnualizedReturn(on(tc.start), on(tc.end)); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("AnnualizedReturn() error = %v, want ErrInvalidRange", err)
			}
			if _, err := p.ProfitBetween(tc.start, tc.end); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ProfitBetween() error = %v, want ErrInvalidRange", err)
			}
			if _, err := p.AnnualizedReturnBetween(tc.start, tc.end); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("AnnualizedReturnBetween() error = %v, want ErrInvalidRange", err)
			}
			if _, err := p.NewReview(on(tc.start), on(tc.end)); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("NewReview() error = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestPortfolio_BadDates(t *testing.T) {
	p := samplePortfolio(t)
	if _, err := p.ProfitBetween("2024-01-01", "2024-02-30"); !errors.Is(err, ErrDateParse) {
		t.Errorf("ProfitBetween() error = %v, want ErrDateParse", err)
	}
	if _, err := p.AnnualizedReturnBetween("new year", "2024-12-31"); !errors.Is(err, ErrDateParse) {
		t.Errorf("AnnualizedReturnBetween() error = %v, want ErrDateParse", err)
	}
}

func TestPortfolio_AnnualizedReturn(t *testing.T) {
	testCases := []struct {
		name       string
		assets     []Asset
		start, end string
		want       Percent
	}{
		{
			name:   "empty portfolio",
			assets: nil,
			start:  "2024-01-01",
			end:    "2024-12-31",
			want:   0,
		},
		{
			name:   "no value on start",
			assets: []Asset{MustNewStock("late", map[string]int{"2024-12-31": 100})},
			start:  "2024-01-01",
			end:    "2024-12-31",
			want:   0,
		},
		{
			name:   "doubles in half a year",
			assets: []Asset{MustNewStock("x", map[string]int{"2023-01-01": 100, "2023-07-02": 200})},
			// 182 days: 2^(365/182) - 1 = 3.01526...
			start: "2023-01-01",
			end:   "2023-07-02",
			want:  301.53,
		},
		{
			name:   "halves in two years",
			assets: []Asset{MustNewStock("x", map[string]int{"2022-01-01": 100, "2024-01-01": 50})},
			// 730 days: 0.5^(365/730) - 1 = -0.29289...
			start: "2022-01-01",
			end:   "2024-01-01",
			want:  -29.29,
		},
		{
			name:   "total loss",
			assets: []Asset{MustNewStock("x", map[string]int{"2024-01-01": 100, "2024-01-02": 0})},
			start:  "2024-01-01",
			end:    "2024-01-02",
			want:   -100,
		},
		{
			name:   "overflow",
			assets: []Asset{MustNewStock("x", map[string]int{"2024-01-01": 1, "2024-01-02": 100})},
			// 100^365 is beyond float64.
			start: "2024-01-01",
			end:   "2024-01-02",
			want:  Percent(math.Inf(1)),
		},
		{
			name:   "flat",
			assets: []Asset{fixedAsset{"cash", 10}},
			start:  "2024-01-01",
			end:    "2024-01-31",
			want:   0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPortfolio()
			for _, a := range tc.assets {
				if err := p.AddAsset(a); err != nil {
					t.Fatalf("AddAsset() error = %v", err)
				}
			}
			got, err := p.AnnualizedReturn(on(tc.start), on(tc.end))
			if err != nil {
				t.Fatalf("AnnualizedReturn() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("AnnualizedReturn() = %v, want %v", float64(got), float64(tc.want))
			}
			// at most 2 decimals.
			if scaled := float64(got) * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
				t.Errorf("AnnualizedReturn() = %v has more than 2 decimals", float64(got))
			}
		})
	}
}

func TestPortfolio_Idempotent(t *testing.T) {
	p := samplePortfolio(t)
	start, end := on("2024-01-01"), on("2024-12-31")
	p1, _ := p.Profit(start, end)
	r1, _ := p.AnnualizedReturn(start, end)
	p2, _ := p.Profit(start, end)
	r2, _ := p.AnnualizedReturn(start, end)
	if p1 != p2 || r1 != r2 {
		t.Errorf("repeated calls differ: Profit %v != %v or AnnualizedReturn %v != %v", p1, p2, r1, r2)
	}
}

func TestPortfolio_AddAsset(t *testing.T) {
	p := samplePortfolio(t)

	var nilStock *Stock
	for _, a := range []Asset{nil, nilStock} {
		if err := p.AddAsset(a); !errors.Is(err, ErrInvalidAsset) {
			t.Errorf("AddAsset(%#v) error = %v, want ErrInvalidAsset", a, err)
		}
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d after invalid adds, want 2", p.Len())
	}

	// duplicates are counted twice, in insertion order.
	fintual := p.Assets()[0]
	if err := p.AddAsset(fintual); err != nil {
		t.Fatalf("AddAsset(duplicate) error = %v", err)
	}
	if got := p.ValueAt(on("2024-01-01")); got != 1400 {
		t.Errorf("ValueAt(2024-01-01) = %v, want 1400", got)
	}
	names := []string{}
	for _, a := range p.Assets() {
		names = append(names, a.Name())
	}
	if len(names) != 3 || names[0] != "fintual" || names[1] != "platanus" || names[2] != "fintual" {
		t.Errorf("Assets() = %v, want [fintual platanus fintual]", names)
	}
}

func TestPortfolio_ValueAt_Empty(t *testing.T) {
	if got := NewPortfolio().ValueAt(date.Today()); got != 0.0 {
		t.Errorf("empty ValueAt() = %v, want 0", got)
	}
}

func TestPortfolio_NewReview(t *testing.T) {
	p := samplePortfolio(t)
	r, err := p.NewReview(on("2024-01-01"), on("2024-12-31"))
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	if r.Start != 1300 || r.End != 1530 || r.Profit != 230 || r.Return != 17.69 {
		t.Errorf("NewReview() = %+v, want start 1300, end 1530, profit 230, return 17.69", r)
	}
	if len(r.Assets) != 2 || r.Assets[1].Name != "platanus" || r.Assets[1].Change() != 150 {
		t.Errorf("NewReview().Assets = %+v, want platanus changing by 150", r.Assets)
	}
	if r.Range.Days() != 365 {
		t.Errorf("NewReview().Range.Days() = %d, want 365", r.Range.Days())
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		in         float64
		want       Percent
		str, signd string
	}{
		{17.692307, 17.69, "17.69%", "+17.69%"},
		{0.125, 0.13, "0.13%", "+0.13%"},
		{-0.125, -0.13, "-0.13%", "-0.13%"},
		{0.001, 0, "0.00%", "-"},
	}
	for _, tc := range testCases {
		got := round2(tc.in)
		if got != tc.want {
			t.Errorf("round2(%v) = %v, want %v", tc.in, float64(got), float64(tc.want))
		}
		if got.String() != tc.str {
			t.Errorf("%v.String() = %q, want %q", float64(got), got.String(), tc.str)
		}
		if got.SignedString() != tc.signd {
			t.Errorf("%v.SignedString() = %q, want %q", float64(got), got.SignedString(), tc.signd)
		}
		if !got.Equal(tc.want + 0.00001) {
			t.Errorf("%v.Equal(%v) = false, want true", float64(got), float64(tc.want+0.00001))
		}
	}
}
