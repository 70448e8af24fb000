package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	rangeFlags
	raw bool
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "report on the portfolio over a range of dates" }
func (*reviewCmd) Usage() string {
	return `sf review -s <date> [-e <date>] [-raw] [<stock>...]
sf review -period <period> [-e <date>] [-raw] [<stock>...]

  Displays each stock price on both dates, the profit and the annualized return.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	review, err := p.NewReview(r.From, r.To)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing review: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.ReviewMarkdown(review, *currency)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
