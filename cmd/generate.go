package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/receipts"
	"github.com/etnz/receipts/config"
	"github.com/etnz/receipts/renderer"
	"github.com/google/subcommands"
)

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	format string
	outDir string
	print  bool
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate an invoice from a directory of receipts" }
func (*generateCmd) Usage() string {
	return `rcp generate [-format md|html] [-o <dir>] [-print] <dir> <name>

  Generates the invoice <name> listing every receipt of <dir>, grouped by
  category with a total per category and a grand total.

  The invoice is written to <name>.md (or .html), lowercased with spaces
  replaced by underscores, in the report directory of the configuration.

Usage Examples:
$ rcp generate receipts/ "January 2025"

`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Invoice format, md or html. Defaults to the configuration report format.")
	f.StringVar(&c.outDir, "o", "", "Directory where the invoice is written. Defaults to the configuration report dir.")
	f.BoolVar(&c.print, "print", false, "Print the invoice to stdout instead of writing a file.")
}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: generate requires a receipts directory and an invoice name.\n")
		return subcommands.ExitUsageError
	}
	dir, name := f.Arg(0), f.Arg(1)

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	format := cfg.Report.Format
	if c.format != "" {
		format = c.format
	}
	if format != config.FormatMarkdown && format != config.FormatHTML {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, use md or html.\n", format)
		return subcommands.ExitUsageError
	}
	outDir := cfg.Report.Dir
	if c.outDir != "" {
		outDir = c.outDir
	}

	inv, err := receipts.LoadInvoice(dir, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading receipts from %q: %v\n", dir, err)
		return subcommands.ExitFailure
	}
	view := renderer.NewInvoice(inv, cfg.Currency)

	if c.print {
		printMarkdown(renderer.InvoiceMarkdown(view), cfg.Report.Style)
		return subcommands.ExitSuccess
	}

	var doc string
	switch format {
	case config.FormatHTML:
		doc, err = renderer.InvoiceHTML(view)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering invoice: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		doc = renderer.InvoiceMarkdown(view)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory %q: %v\n", outDir, err)
		return subcommands.ExitFailure
	}
	path := filepath.Join(outDir, inv.FileName("."+format))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing invoice %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Generated %s with %d receipts, total %s.\n", path, inv.Len(), view.Total)
	return subcommands.ExitSuccess
}
