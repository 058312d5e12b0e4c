package receipts

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// SortedDir is the output tree produced by Sort.
type SortedDir struct {
	Root       string
	Southroads string
	Utica      string

	Copied  int // files written
	Skipped int // files already in place with identical content
}

// Sorter copies receipts into a tree with one directory per location.
type Sorter struct {
	Allocator Allocator
	Logger    *log.Logger // nil means log.Default()
}

// Sort sorts the receipts of sourceDir into outDir using a zero Sorter.
func Sort(sourceDir, outDir string) (SortedDir, error) {
	return Sorter{}.Sort(sourceDir, outDir)
}

// Sort copies every receipt of sourceDir into outDir/southroads or
// outDir/utica according to its location.
//
// A split receipt is copied into both directories, each copy named after its
// share of the cost. Sources are never moved or deleted.
//
// Sort can be run again on the same outDir: copies already in place are
// skipped, so a run interrupted by a failure is completed by the next one.
// A destination that exists with different content is a FileCopyFailure.
func (s Sorter) Sort(sourceDir, outDir string) (SortedDir, error) {
	records, err := LoadRecords(sourceDir)
	if err != nil {
		return SortedDir{}, err
	}
	copies, err := s.plan(records)
	if err != nil {
		return SortedDir{}, err
	}

	sd := SortedDir{
		Root:       outDir,
		Southroads: filepath.Join(outDir, string(Southroads)),
		Utica:      filepath.Join(outDir, string(Utica)),
	}
	for _, dir := range []string{sd.Root, sd.Southroads, sd.Utica} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return SortedDir{}, newError(DirCreateFailure, dir, err, "the dir was not created")
		}
	}

	for _, c := range copies {
		if err := s.copyTo(&sd, c.src, c.dst); err != nil {
			return SortedDir{}, err
		}
	}
	return sd, nil
}

// sortCopy is a file to copy: the file of src is written where dst belongs.
type sortCopy struct {
	src, dst Record
}

// plan lists the copies needed to sort records, split records being
// allocated first so that no allocation error happens after a write.
func (s Sorter) plan(records []Record) ([]sortCopy, error) {
	copies := make([]sortCopy, 0, len(records))
	for _, r := range records {
		if !r.IsSplit() {
			copies = append(copies, sortCopy{src: r, dst: r})
			continue
		}
		south, utica, err := s.Allocator.Allocate(r)
		if err != nil {
			return nil, err
		}
		copies = append(copies, sortCopy{src: r, dst: south}, sortCopy{src: r, dst: utica})
	}
	return copies, nil
}

// copyTo copies the file of src where dst belongs in sd.
func (s Sorter) copyTo(sd *SortedDir, src, dst Record) error {
	dir := sd.Southroads
	if dst.Location() == Utica {
		dir = sd.Utica
	}
	dst = dst.WithSourceDir(dir)

	copied, err := copyFile(src.Path(), dst.Path())
	if err != nil {
		return newError(FileCopyFailure, src.Path(), err, "could not copy to %q", dst.Path())
	}
	if copied {
		sd.Copied++
		s.logger().Printf("copied %s to %s", src.Path(), dst.Path())
	} else {
		sd.Skipped++
		s.logger().Printf("skipped %s, already in place", dst.Path())
	}
	return nil
}

func (s Sorter) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// copyFile copies src to dst through a temporary file renamed into place.
//
// If dst already holds the same bytes as src nothing is written and copied is
// false.
func copyFile(src, dst string) (copied bool, err error) {
	srcSum, err := fileSum(src)
	if err != nil {
		return false, fmt.Errorf("could not read source: %w", err)
	}
	dstSum, err := fileSum(dst)
	switch {
	case err == nil && bytes.Equal(srcSum, dstSum):
		return false, nil
	case err == nil:
		return false, fmt.Errorf("destination exists with a different content")
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("could not read destination: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".rcp-*")
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	hasher := sha256.New()
	if _, err = io.Copy(io.MultiWriter(tmp, hasher), in); err != nil {
		_ = tmp.Close()
		return false, err
	}
	if err = tmp.Close(); err != nil {
		return false, err
	}
	if !bytes.Equal(hasher.Sum(nil), srcSum) {
		err = fmt.Errorf("copy hash mismatch: source changed during copy")
		return false, err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return false, err
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return false, err
	}
	return true, nil
}

// fileSum returns the sha256 of the file content.
func fileSum(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
