package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/receipts"
	"github.com/gofrs/flock"
	"github.com/google/subcommands"
)

type sortCmd struct {
	noLock bool
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "copy receipts into one directory per location" }
func (*sortCmd) Usage() string {
	return `rcp sort [-no-lock] <dir> <out>

  Copies every receipt of <dir> into <out>/southroads or <out>/utica
  according to its location. Split receipts are copied into both
  directories, each copy named after its share of the cost.

  Receipts in <dir> are never moved or deleted. Running sort again on the
  same <out> completes an interrupted run.

`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noLock, "no-lock", false, "Do not hold the <out>.lock file while sorting.")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: sort requires a source directory and an output directory.\n")
		return subcommands.ExitUsageError
	}
	src, out := f.Arg(0), f.Arg(1)

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	if cfg.Sort.Lock && !c.noLock {
		unlock, err := lockOutput(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer unlock()
	}

	sorter := receipts.Sorter{Allocator: receipts.Allocator{Currency: cfg.Currency}}
	sd, err := sorter.Sort(src, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sorting %q: %v\n", src, err)
		if errors.Is(err, receipts.FileCopyFailure) {
			fmt.Fprintf(os.Stderr, "Run sort again once the problem is fixed, files already copied are kept.\n")
		}
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Sorted %q into %q: %d copied, %d already in place.\n", src, sd.Root, sd.Copied, sd.Skipped)
	return subcommands.ExitSuccess
}

// lockOutput takes an exclusive lock next to out so that two sorts never
// write the same tree. The returned func releases it.
func lockOutput(out string) (func(), error) {
	path := filepath.Clean(out) + ".lock"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not acquire lock %q: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("another sort is already writing to %q (lock %q)", out, path)
	}
	// the file is removed while still locked: a sort that opened it before
	// fails on the held lock, and a later one locks a new file.
	return func() {
		os.Remove(path)
		lock.Unlock()
	}, nil
}
