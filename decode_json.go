package stockfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeStocksJSON reads stocks out of an arbitrary JSON document.
//
// path is a JSONPath expression (defaults to "$") selecting an object of the form
//
//	{"fintual": {"2024-01-01": 100, "2024-12-31": 180}, ...}
//
// Stocks are returned sorted by name.
func DecodeStocksJSON(r io.Reader, path string) ([]*Stock, error) {
	if path == "" {
		path = "$"
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("parse error: not a correct json: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("parse error: cannot select %q: %w", path, err)
	}
	// a filter expression returns a list of answers, keep the only one.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	jstocks, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse error: %q must select an object of stocks, got %T", path, jval)
	}

	stocks := make([]*Stock, 0, len(jstocks))
	for _, name := range slices.Sorted(maps.Keys(jstocks)) {
		jprices, ok := jstocks[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parse error: stock %q must be an object of prices", name)
		}
		prices := make(map[string]float64, len(jprices))
		for on, jprice := range jprices {
			p, ok := jprice.(float64)
			if !ok {
				return nil, fmt.Errorf("parse error: stock %q price on %q must be of type 'number'", name, on)
			}
			prices[on] = p
		}
		s, err := NewStock(name, prices)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, nil
}
