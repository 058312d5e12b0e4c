// Command rcp sorts receipts by location and generates invoices from them.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/receipts/cmd"
	"github.com/etnz/receipts/docs"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// RCP_CONFIG may come from a .env file in the working directory.
	_ = godotenv.Load()

	completion().Complete("rcp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
// Run with COMP_INSTALL=1 to install it.
func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
		Sub: map[string]*complete.Command{
			"sort": {
				Flags: map[string]complete.Predictor{"no-lock": predict.Nothing},
				Args:  predict.Dirs("*"),
			},
			"generate": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{"md", "html"},
					"o":      predict.Dirs("*"),
					"print":  predict.Nothing,
				},
				Args: predict.Dirs("*"),
			},
			"list": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
				Args:  predict.Dirs("*"),
			},
			"query": {
				Args: predict.Dirs("*"),
			},
			"topic": {
				Args: predict.Set(append(topics, "readme", "*")),
			},
		},
	}
}
