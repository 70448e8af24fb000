package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// returnCmd holds the flags for the 'return' subcommand.
type returnCmd struct {
	rangeFlags
}

func (*returnCmd) Name() string     { return "return" }
func (*returnCmd) Synopsis() string { return "annualized return of the portfolio over a range of dates" }
func (*returnCmd) Usage() string {
	return `sf return -s <date> [-e <date>] [<stock>...]
sf return -period <period> [-e <date>] [<stock>...]

  Prints the compounded return of the portfolio between the start and end dates,
  scaled to a 365 days year, in percent.
  A portfolio without value on the start date has a return of 0.
`
}

func (c *returnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	ret, err := p.AnnualizedReturn(r.From, r.To)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing annualized return: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Annualized Return: %s\n", ret)
	return subcommands.ExitSuccess
}
