// Package cmd implements the CLI application to compute the performance of a portfolio of stocks.
package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stockfolio"
)

const (
	EnvMarketFile = "SF_MARKET_FILE"
	EnvCurrency   = "SF_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	marketFile = flag.String("market-file", envOr(EnvMarketFile, "market.jsonl"), "Path to the market file containing daily stock prices (JSONL format)")
	currency   = flag.String("currency", envOr(EnvCurrency, "EUR"), "Currency used to display amounts")
	Verbose    = flag.Bool("v", false, "verbose output")
)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// DecodeMarketFile decodes all stocks from the app market file.
func DecodeMarketFile() ([]*stockfolio.Stock, error) {
	f, err := os.Open(*marketFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open market file %q: %w", *marketFile, err)
	}
	defer f.Close()
	stocks, err := stockfolio.DecodeMarket(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read market file %q: %w", *marketFile, err)
	}
	return stocks, nil
}

// EncodeMarketFile replaces the app market file with stocks, in canonical form.
func EncodeMarketFile(stocks []*stockfolio.Stock) error {
	var buf bytes.Buffer
	if err := stockfolio.EncodeMarket(&buf, stocks...); err != nil {
		return err
	}
	return os.WriteFile(*marketFile, buf.Bytes(), 0644)
}

// DecodePortfolio builds a portfolio holding the named stocks from the market file, or all of them if none is named.
func DecodePortfolio(names ...string) (*stockfolio.Portfolio, error) {
	stocks, err := DecodeMarketFile()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*stockfolio.Stock, len(stocks))
	for _, s := range stocks {
		byName[s.Name()] = s
	}
	if len(names) == 0 {
		for _, s := range stocks {
			names = append(names, s.Name())
		}
	}

	p := stockfolio.NewPortfolio()
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown stock %q in market file %q", name, *marketFile)
		}
		if err := p.AddAsset(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}
