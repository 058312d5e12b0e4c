package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/receipts"
	"github.com/google/subcommands"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type listCmd struct {
	json bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the receipts of a directory" }
func (*listCmd) Usage() string {
	return `rcp list [-json] <dir>

  Lists the receipts of <dir> as a table with their total, or as JSON lines
  with -json.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print one JSON object per receipt.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: list requires a receipts directory.\n")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := receipts.LoadRecords(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading receipts: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := receipts.EncodeRecords(stdout, records); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding receipts: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	fmt.Fprintln(stdout, renderRecords(records, cfg.Currency))
	return subcommands.ExitSuccess
}

// renderRecords renders records as a table with a total footer.
func renderRecords(records []receipts.Record, currency string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Date", "Vendor", "Description", "Category", "Location", "Cost"})
	for _, r := range records {
		tw.AppendRow(table.Row{r.Date(), r.Vendor(), r.Description(), r.Category(), r.Location(), receipts.M(r.Cost(), currency).String()})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Total", receipts.M(receipts.SumCost(records), currency).String()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
