package stockfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"slices"
	"strings"

	"github.com/etnz/stockfolio/date"
)

const attrOn = "on"

// This file contains code to persist stock prices in a way that is still human-readable and git-friendly.
//
// The market file is a JSONL file, one line per day, with the date in the "on" property and
// a property per stock holding its price that day:
//
//	{"on":"2024-01-01","fintual":100,"platanus":1200}
//	{"on":"2024-12-31","fintual":180,"platanus":1350}

// DecodeMarket reads a market file and returns its stocks in order of first appearance.
func DecodeMarket(r io.Reader) ([]*Stock, error) {
	var names []string
	prices := make(map[string]map[date.Date]float64)

	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		txt := scanner.Text()
		// Start simply ignoring empty lines.
		if strings.TrimSpace(txt) == "" {
			continue
		}

		jobj := make(map[string]any)
		if err := json.Unmarshal([]byte(txt), &jobj); err != nil {
			return nil, fmt.Errorf("parse error line %v: not a correct json: %w", i, err)
		}

		jvalue, ok := jobj[attrOn]
		if !ok {
			return nil, fmt.Errorf("parse error line %v: missing the property %q with a date", i, attrOn)
		}
		jstring, ok := jvalue.(string)
		if !ok {
			return nil, fmt.Errorf("parse error line %v: property %q must be of type 'string'", i, attrOn)
		}
		on, err := date.Parse(jstring)
		if err != nil {
			return nil, fmt.Errorf("parse error line %v: property %q must be a valid date: %w", i, attrOn, err)
		}

		// Read all other attributes as (name, price) pairs.
		var fresh []string
		for name, price := range jobj {
			if name == attrOn { // reserved word for timestamp
				continue
			}
			p, ok := price.(float64)
			if !ok {
				return nil, fmt.Errorf("parse error line %v: property %q must be of type 'number'", i, name)
			}
			h, exists := prices[name]
			if !exists {
				h = make(map[date.Date]float64)
				prices[name] = h
				fresh = append(fresh, name)
			}
			if old, exists := h[on]; exists {
				log.Printf("%v: update %v price from %v with %v", on, name, old, p)
			}
			h[on] = p
		}
		// names discovered on the same line come from a map, sort them to be stable.
		slices.Sort(fresh)
		names = append(names, fresh...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error line %v: %w", i, err)
	}

	stocks := make([]*Stock, 0, len(names))
	for _, name := range names {
		s, err := NewStock(name, prices[name])
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, nil
}

// EncodeMarket writes stocks into a market file, in canonical form: one line per day,
// in chronological order, with stocks sorted by name.
func EncodeMarket(w io.Writer, stocks ...*Stock) error {
	sorted := slices.Clone(stocks)
	slices.SortStableFunc(sorted, func(a, b *Stock) int { return strings.Compare(a.Name(), b.Name()) })

	histories := make([]*date.History[float64], 0, len(sorted))
	for _, s := range sorted {
		histories = append(histories, &s.prices)
	}

	for day := range date.Iterate(histories...) {
		var jw jsonObjectWriter
		jw.Append(attrOn, day.String())
		for _, s := range sorted {
			price, ok := s.prices.Get(day)
			// Skip nans. json does not support NaN.
			if !ok || math.IsNaN(price) {
				continue
			}
			jw.Append(s.Name(), price)
		}
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("persist error on %s: %w", day, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("persist error: cannot write: %w", err)
		}
	}
	return nil
}
