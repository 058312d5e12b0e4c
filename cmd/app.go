// Package cmd implements the rcp CLI application to sort receipts and generate invoices.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/etnz/receipts/config"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&sortCmd{},
	&generateCmd{},
	&listCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file. Defaults to $RCP_CONFIG, then rcp.toml")

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// LoadConfig loads the application configuration.
func LoadConfig() (config.Config, error) {
	return config.Load(config.Path(*configFile))
}
