package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the market file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `sf fmt

  Validates and formats the market file. This command reads all prices,
  sorts them by date, and writes them back in a canonical JSONL format:
  one line per day, stocks sorted by name.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := DecodeMarketFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load market file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeMarketFile(stocks); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted market file %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	log.Printf("formatted %d stocks in %q", len(stocks), *marketFile)
	return subcommands.ExitSuccess
}
