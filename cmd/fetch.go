package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/etnz/stockfolio/date"
	"github.com/etnz/stockfolio/eodhd"
	"github.com/google/subcommands"
)

const EnvEodhdAPIKey = "EODHD_API_KEY"

// EODHD API and response cache used by the fetch command.
var (
	eodhdBaseURL  = eodhd.DefaultBaseURL
	eodhdCacheDir = os.TempDir()
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	rangeFlags
	name   string
	apiKey string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily close prices from eodhd.com" }
func (*fetchCmd) Usage() string {
	return `sf fetch -s <date> [-e <date>] [-name <stock>] <ticker>
sf fetch -period <period> [-e <date>] [-name <stock>] <ticker>

  Fetches the daily close prices of an EODHD ticker (e.g. MCD.US) over the range
  and adds them to the market file, replacing existing prices on the same days.

  Requires the EODHD_API_KEY environment variable to be set or passed as a flag.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.name, "name", "", "stock name in the market file (defaults to the ticker)")
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. This flag takes precedence over the "+EnvEodhdAPIKey+" environment variable. You can get one at https://eodhd.com/")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "fetch requires exactly one ticker")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	name := c.name
	if name == "" {
		name = ticker
	}
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitUsageError
	}
	key := envOr(EnvEodhdAPIKey, "")
	if c.apiKey != "" {
		key = c.apiKey
	}
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable\n", EnvEodhdAPIKey)
		return subcommands.ExitUsageError
	}

	client := eodhd.NewClient(key, eodhdCacheDir)
	client.BaseURL = eodhdBaseURL
	fetched, err := client.FetchStock(ctx, name, ticker, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch from eodhd.com: %v\n", err)
		return subcommands.ExitFailure
	}
	n := fetched.Len()

	stocks, err := DecodeMarketFile()
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("market file %q does not exist, creating it", *marketFile)
		stocks, err = nil, nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market file: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, s := range stocks {
		if s.Name() == name {
			if fetched, err = mergePrices(s, fetched); err != nil {
				fmt.Fprintf(os.Stderr, "Error merging prices: %v\n", err)
				return subcommands.ExitFailure
			}
		}
	}

	if err := EncodeMarketFile(merge(stocks, []*stockfolio.Stock{fetched})); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market file %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Fetched %d prices of %s into %s\n", n, name, *marketFile)
	return subcommands.ExitSuccess
}

// mergePrices returns a stock with the prices of both stocks, newer prices win on the same day.
func mergePrices(older, newer *stockfolio.Stock) (*stockfolio.Stock, error) {
	prices := make(map[date.Date]float64, older.Len()+newer.Len())
	for on, p := range older.Prices() {
		prices[on] = p
	}
	for on, p := range newer.Prices() {
		prices[on] = p
	}
	return stockfolio.NewStock(newer.Name(), prices)
}
