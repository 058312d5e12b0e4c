package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/receipts/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `rcp topic [<topic>...]

  Show documentation for the given topics, "*" shows them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}

	style := "auto"
	if cfg, err := LoadConfig(); err == nil {
		style = cfg.Report.Style
	}
	printMarkdown(doc, style)

	return subcommands.ExitSuccess
}
