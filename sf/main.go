// Command sf computes the profit and annualized return of a portfolio of stocks.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/etnz/stockfolio/cmd"
	"github.com/etnz/stockfolio/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// when called by the shell for completion, this exits.
	completion().Complete("sf")

	commander := subcommands.NewCommander(flag.CommandLine, "sf")
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes sf subcommands and flags for shell completion.
func completion() *complete.Command {
	c := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"market-file": predict.Files("*.jsonl"),
			"currency":    predict.Set{"EUR", "USD", "CLP", "GBP"},
			"v":           predict.Nothing,
		},
	}
	for _, sub := range cmd.Commands {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		flags := make(map[string]complete.Predictor)
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "period":
				flags[f.Name] = predict.Set{"week", "month", "quarter", "year"}
			case "raw":
				flags[f.Name] = predict.Nothing
			default:
				flags[f.Name] = predict.Something
			}
		})
		sc := &complete.Command{Flags: flags}
		switch sub.Name() {
		case "import":
			sc.Args = predict.Files("*.json")
		case "topic":
			topics, _ := docs.All()
			sc.Args = predict.Set(topics)
		}
		c.Sub[sub.Name()] = sc
	}
	return c
}
