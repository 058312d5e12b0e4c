package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// runCmd parses args for c and executes it with the default configuration.
// It returns the exit status and what the command wrote to stdout.
func runCmd(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("could not parse %v: %v", args, err)
	}

	noConfig := filepath.Join(t.TempDir(), "rcp.toml")
	oldConfig := configFile
	configFile = &noConfig
	defer func() { configFile = oldConfig }()

	var b bytes.Buffer
	oldStdout := stdout
	stdout = &b
	defer func() { stdout = oldStdout }()

	status := c.Execute(context.Background(), f)
	return status, b.String()
}

// writeReceipts creates an empty receipt file for each name in dir.
func writeReceipts(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
}
