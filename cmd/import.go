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
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import stock prices from a JSON document" }
func (*importCmd) Usage() string {
	return `sf import [-path <jsonpath>] <file.json>

  Imports stock prices into the market file. The JSON document must contain an
  object of stocks, each one an object of prices by date:

    {"fintual": {"2024-01-01": 100, "2024-12-31": 180}}

  -path selects that object inside a larger document, e.g. '$.data.stocks'.
  Imported stocks replace the stocks of the same name in the market file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "$", "JSONPath expression selecting the object of stocks")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import requires exactly one JSON file")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	r, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer r.Close()
	imported, err := stockfolio.DecodeStocksJSON(r, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	stocks, err := DecodeMarketFile()
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("market file %q does not exist, creating it", *marketFile)
		stocks, err = nil, nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market file: %v\n", err)
		return subcommands.ExitFailure
	}

	stocks = merge(stocks, imported)
	if err := EncodeMarketFile(stocks); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market file %q: %v\n", *marketFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Imported %d stocks into %s\n", len(imported), *marketFile)
	return subcommands.ExitSuccess
}

// merge returns stocks where stocks of the same name are replaced by the imported ones.
func merge(stocks, imported []*stockfolio.Stock) []*stockfolio.Stock {
	replaced := make(map[string]bool, len(imported))
	for _, s := range imported {
		replaced[s.Name()] = true
	}
	res := make([]*stockfolio.Stock, 0, len(stocks)+len(imported))
	for _, s := range stocks {
		if replaced[s.Name()] {
			log.Printf("replace stock %q", s.Name())
			continue
		}
		res = append(res, s)
	}
	return append(res, imported...)
}
