package receipts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadRecords decodes every receipt found in sourceDir.
//
// The directory must be flat and contain only .pdf files. Loading fails fast:
// the first invalid entry aborts the whole call and no record is returned.
// Records are returned in the directory walk order, callers must not rely on
// it.
func LoadRecords(sourceDir string) ([]Record, error) {
	info, err := os.Stat(sourceDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, newError(MissingDir, sourceDir, nil, "this dir does not exist")
	case err != nil:
		return nil, newError(WalkFailure, sourceDir, err, "could not stat dir")
	case !info.IsDir():
		return nil, newError(InvalidDir, sourceDir, nil, "provided a file, not a dir")
	}

	paths, err := findReceiptPaths(sourceDir)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(paths))
	for _, p := range paths {
		r, err := Decode(sourceDir, p)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// findReceiptPaths lists the receipt files of a flat directory.
func findReceiptPaths(sourceDir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(sourceDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return newError(WalkFailure, p, err, "an error was encountered when walking the dir")
		}
		if p == sourceDir {
			return nil
		}
		if d.IsDir() {
			return newError(InvalidDirContents, p, nil, "the dir must not contain any subdirectories")
		}
		if !strings.EqualFold(filepath.Ext(p), locationSuffix) {
			return newError(InvalidFileExtension, p, nil, "the dir must contain only .pdf files")
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		var e *Error
		if !errors.As(err, &e) {
			err = newError(WalkFailure, sourceDir, err, "an error was encountered when walking the dir")
		}
		return nil, err
	}
	return paths, nil
}
