package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// profitCmd holds the flags for the 'profit' subcommand.
type profitCmd struct {
	rangeFlags
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "change in value of the portfolio over a range of dates" }
func (*profitCmd) Usage() string {
	return `sf profit -s <date> [-e <date>] [<stock>...]
sf profit -period <period> [-e <date>] [<stock>...]

  Prints the value of the portfolio on the end date minus its value on the start date.
  The portfolio holds the named stocks, or every stock of the market file.
  A stock without a price on a date is worth 0 that day.
`
}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	profit, err := p.Profit(r.From, r.To)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing profit: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Profit: %s\n", stockfolio.M(profit, *currency).SignedString())
	return subcommands.ExitSuccess
}
