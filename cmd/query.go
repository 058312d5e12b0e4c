package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/receipts"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query receipts with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `rcp query <dir> <jsonpath>

  Evaluates <jsonpath> over the array of receipts of <dir> and prints the
  result as indented JSON. Each receipt is an object with the keys date,
  vendor, cost, description, category, location and path.

Usage Examples:
$ rcp query receipts/ '$[?(@.location == "split")].path'
$ rcp query receipts/ '$[*].cost'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: query requires a receipts directory and a JSONPath expression.\n")
		return subcommands.ExitUsageError
	}

	records, err := receipts.LoadRecords(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading receipts: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := queryRecords(records, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, result)
	return subcommands.ExitSuccess
}

// queryRecords evaluates path over the JSON array of records.
func queryRecords(records []receipts.Record, path string) (string, error) {
	if records == nil {
		records = []receipts.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("could not encode receipts: %w", err)
	}
	var jobj interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return "", fmt.Errorf("could not decode receipts: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("could not evaluate %q: %w", path, err)
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode result: %w", err)
	}
	return string(out), nil
}
