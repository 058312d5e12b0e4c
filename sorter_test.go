package receipts

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// quiet is a Sorter that does not log.
var quiet = Sorter{Logger: log.New(io.Discard, "", 0)}

func TestSort_Empty(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "sorted")

	sd, err := quiet.Sort(src, out)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}

	for _, dir := range []string{out, filepath.Join(out, "southroads"), filepath.Join(out, "utica")} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("%q is not a dir: %v", dir, err)
		}
	}
	if sd.Root != out || sd.Southroads != filepath.Join(out, "southroads") || sd.Utica != filepath.Join(out, "utica") {
		t.Errorf("Sort() = %+v, unexpected paths", sd)
	}
	if sd.Copied != 0 || sd.Skipped != 0 {
		t.Errorf("Sort() copied %d, skipped %d, want none", sd.Copied, sd.Skipped)
	}
}

func TestSort(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "sorted")
	writeReceipts(t, src,
		"010125-Acme-12.50-Lunch-Meals-southroads.pdf",
		"010225-Deli-10.00-Dinner-Meals-Utica.pdf",
		"010325-Amtrak-7.01-Ticket-Travel-split.pdf",
		"010425-Garage-7.00-Parking-Travel-SPLIT.pdf",
	)

	sd, err := quiet.Sort(src, out)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if sd.Copied != 6 {
		t.Errorf("Sort() copied %d files, want 6", sd.Copied)
	}

	wantSouthroads := []string{
		"010125-Acme-12.50-Lunch-Meals-southroads.pdf",
		"010325-Amtrak-3.50-Ticket-Travel-southroads.pdf",
		"010425-Garage-3.50-Parking-Travel-southroads.pdf",
	}
	if diff := cmp.Diff(wantSouthroads, readDirNames(t, sd.Southroads)); diff != "" {
		t.Errorf("southroads mismatch (-want +got):\n%s", diff)
	}
	wantUtica := []string{
		"010225-Deli-10.00-Dinner-Meals-Utica.pdf",
		"010325-Amtrak-3.51-Ticket-Travel-utica.pdf",
		"010425-Garage-3.50-Parking-Travel-utica.pdf",
	}
	if diff := cmp.Diff(wantUtica, readDirNames(t, sd.Utica)); diff != "" {
		t.Errorf("utica mismatch (-want +got):\n%s", diff)
	}

	// both shares of a split receipt are copies of the original file.
	for _, p := range []string{
		filepath.Join(sd.Southroads, "010325-Amtrak-3.50-Ticket-Travel-southroads.pdf"),
		filepath.Join(sd.Utica, "010325-Amtrak-3.51-Ticket-Travel-utica.pdf"),
	} {
		content, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if want := "receipt 010325-Amtrak-7.01-Ticket-Travel-split.pdf"; string(content) != want {
			t.Errorf("%s content = %q, want %q", p, content, want)
		}
	}

	// sources are left untouched.
	if got := readDirNames(t, src); len(got) != 4 {
		t.Errorf("source dir has %d files after sort, want 4", len(got))
	}
	// the sorted tree is itself a valid receipts dir.
	for _, dir := range []string{sd.Southroads, sd.Utica} {
		if _, err := LoadRecords(dir); err != nil {
			t.Errorf("LoadRecords(%q) error = %v", dir, err)
		}
	}
}

func TestSort_Rerun(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "sorted")
	writeReceipts(t, src,
		"010125-Acme-12.50-Lunch-Meals-southroads.pdf",
		"010325-Amtrak-7.01-Ticket-Travel-split.pdf",
	)

	if _, err := quiet.Sort(src, out); err != nil {
		t.Fatalf("first Sort() error = %v", err)
	}
	// simulate a run interrupted before the last copy.
	if err := os.Remove(filepath.Join(out, "utica", "010325-Amtrak-3.51-Ticket-Travel-utica.pdf")); err != nil {
		t.Fatal(err)
	}

	sd, err := quiet.Sort(src, out)
	if err != nil {
		t.Fatalf("second Sort() error = %v", err)
	}
	if sd.Copied != 1 || sd.Skipped != 2 {
		t.Errorf("second Sort() copied %d, skipped %d, want 1 and 2", sd.Copied, sd.Skipped)
	}
}

func TestSort_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		setup    func(t *testing.T, src, out string)
		wantKind Kind
	}{
		{
			name: "invalid receipt",
			setup: func(t *testing.T, src, out string) {
				writeReceipts(t, src, "010125-Acme-12.50-Lunch-Meals-boston.pdf")
			},
			wantKind: InvalidLocation,
		},
		{
			name: "out is a file",
			setup: func(t *testing.T, src, out string) {
				writeReceipts(t, src, "010125-Acme-12.50-Lunch-Meals-utica.pdf")
				if err := os.WriteFile(out, nil, 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantKind: DirCreateFailure,
		},
		{
			name: "conflicting destination",
			setup: func(t *testing.T, src, out string) {
				writeReceipts(t, src, "010125-Acme-12.50-Lunch-Meals-utica.pdf")
				writeReceipts(t, filepath.Join(out, "utica"), "010125-Acme-12.50-Lunch-Meals-utica.pdf")
				// same name, other content.
				if err := os.WriteFile(filepath.Join(out, "utica", "010125-Acme-12.50-Lunch-Meals-utica.pdf"), []byte("other"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantKind: FileCopyFailure,
		},
		{
			name: "sub cent split",
			setup: func(t *testing.T, src, out string) {
				writeReceipts(t, src, "010125-Acme-10.005-Lunch-Meals-split.pdf")
			},
			wantKind: SplitInvariantViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := t.TempDir()
			out := filepath.Join(t.TempDir(), "sorted")
			tc.setup(t, src, out)

			_, err := quiet.Sort(src, out)
			if !errors.Is(err, tc.wantKind) {
				t.Errorf("Sort() error = %v, want kind %v", err, tc.wantKind)
			}
		})
	}
}

func TestSort_InvalidSourceCreatesNothing(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "sorted")
	writeReceipts(t, src, "notes.txt")

	if _, err := quiet.Sort(src, out); !errors.Is(err, InvalidFileExtension) {
		t.Fatalf("Sort() error = %v, want kind %v", err, InvalidFileExtension)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output dir was created despite a validation error: %v", err)
	}
}

func TestSort_AllocationFailureCopiesNothing(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "sorted")
	writeReceipts(t, src,
		"010125-Acme-12.50-Lunch-Meals-utica.pdf",
		"020125-Deli-10.005-Dinner-Meals-split.pdf",
	)

	if _, err := quiet.Sort(src, out); !errors.Is(err, SplitInvariantViolation) {
		t.Fatalf("Sort() error = %v, want kind %v", err, SplitInvariantViolation)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output dir was created despite an allocation error: %v", err)
	}
}

func TestSort_CopyFailureNamesBothPaths(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "sorted")
	writeReceipts(t, src, "010125-Acme-12.50-Lunch-Meals-utica.pdf")
	writeReceipts(t, filepath.Join(out, "utica"))
	if err := os.Chmod(filepath.Join(out, "utica"), 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(filepath.Join(out, "utica"), 0755) })

	_, err := quiet.Sort(src, out)
	var e *Error
	if !errors.As(err, &e) || e.Kind != FileCopyFailure {
		t.Fatalf("Sort() error = %v, want kind %v", err, FileCopyFailure)
	}
	if e.Path != filepath.Join(src, "010125-Acme-12.50-Lunch-Meals-utica.pdf") {
		t.Errorf("error path = %q, want the source file", e.Path)
	}
	if want := filepath.Join(out, "utica", "010125-Acme-12.50-Lunch-Meals-utica.pdf"); !strings.Contains(e.Msg, want) {
		t.Errorf("error message %q does not name the destination %q", e.Msg, want)
	}
}
