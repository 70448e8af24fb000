package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "price of a stock on a date" }
func (*priceCmd) Usage() string {
	return `sf price <stock> <date>

  Prints the price of the stock on that exact date, 0 if the market file has none.
`
}

func (*priceCmd) SetFlags(f *flag.FlagSet) {}

func (*priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "price requires a stock name and a date")
		return subcommands.ExitUsageError
	}
	name, on := f.Arg(0), f.Arg(1)

	stocks, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stocks: %v\n", err)
		return subcommands.ExitFailure
	}
	i := slices.IndexFunc(stocks, func(s *stockfolio.Stock) bool { return s.Name() == name })
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Unknown stock %q\n", name)
		return subcommands.ExitFailure
	}
	s := stocks[i]
	price, err := s.PriceOn(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(stdout, "%s %s: %s\n", s.Name(), on, stockfolio.M(price, *currency))
	return subcommands.ExitSuccess
}
