package receipts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a const string.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// writeReceipts creates a receipt file for each name in dir. Each file
// contains its own name so that copies can be traced back to their source.
func writeReceipts(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("receipt "+name), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// readDirNames returns the names of the entries of dir.
func readDirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("could not read %q: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// recordsOf decodes names as receipts living in dir "in".
func recordsOf(t *testing.T, names ...string) []Record {
	t.Helper()
	records := make([]Record, 0, len(names))
	for _, name := range names {
		records = append(records, mustDecode(t, "in", name))
	}
	return records
}
