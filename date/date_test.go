package date

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-01", New(2024, time.January, 1), false},
		{"2024-1-1", New(2024, time.January, 1), false},
		{" 2024-12-31 ", New(2024, time.December, 31), false},
		{"2024-02-29", New(2024, time.February, 29), false},
		{"2024-03-10T15:04:05Z", New(2024, time.March, 10), false},
		{"2023-02-29", Date{}, true},
		{"01/02/2024", Date{}, true},
		{"fintual", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrParse) {
					t.Errorf("Parse(%q) error = %v, want ErrParse", tc.in, err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-12-31", 365}, // 2024 is a leap year
		{"2023-01-01", "2023-12-31", 364},
		{"2024-01-01", "2024-01-02", 1},
		{"2024-03-30", "2024-03-31", 1},
		{"2024-01-02", "2024-01-01", -1},
		{"2024-01-01", "2024-01-01", 0},
	}
	for _, tc := range testCases {
		got := MustParse(tc.to).Sub(MustParse(tc.from))
		if got != tc.want {
			t.Errorf("%s.Sub(%s) = %d, want %d", tc.to, tc.from, got, tc.want)
		}
	}
}

func TestNew_Normalizes(t *testing.T) {
	if got, want := New(2024, time.February, 30), New(2024, time.March, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
	if got, want := New(2025, time.January, 0), New(2024, time.December, 31); got != want {
		t.Errorf("New(2025, 1, 0) = %v, want %v", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	var prices map[Date]float64
	if err := json.Unmarshal([]byte(`{"2024-1-1": 100, "2024-12-31": 180}`), &prices); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got := prices[New(2024, time.January, 1)]; got != 100 {
		t.Errorf("prices[2024-01-01] = %v, want 100", got)
	}

	var on Date
	if err := json.Unmarshal([]byte(`"2024-31-12"`), &on); !errors.Is(err, ErrParse) {
		t.Errorf("json.Unmarshal(bad date) error = %v, want ErrParse", err)
	}

	got, err := json.Marshal(New(2024, time.July, 4))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(got) != `"2024-07-04"` {
		t.Errorf("json.Marshal() = %s, want %q", got, "2024-07-04")
	}
}
