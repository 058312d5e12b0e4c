package receipts

import (
	"fmt"
	"strings"
)

// Kind classifies the failures reported by this package.
//
// A Kind is itself an error so that callers can test for it with errors.Is:
//
//	if errors.Is(err, receipts.InvalidDate) { ... }
type Kind int

const (
	InvalidFileName Kind = iota + 1
	InvalidDate
	InvalidCost
	InvalidLocation
	MissingDir
	InvalidDir
	InvalidDirContents
	InvalidFileExtension
	WalkFailure
	DirCreateFailure
	FileCopyFailure
	SplitInvariantViolation
	InvalidSplitInput
)

var kindNames = map[Kind]string{
	InvalidFileName:         "invalid file name",
	InvalidDate:             "invalid date",
	InvalidCost:             "invalid cost",
	InvalidLocation:         "invalid location",
	MissingDir:              "missing dir",
	InvalidDir:              "invalid dir",
	InvalidDirContents:      "invalid dir contents",
	InvalidFileExtension:    "invalid file extension",
	WalkFailure:             "walk failure",
	DirCreateFailure:        "dir create failure",
	FileCopyFailure:         "file copy failure",
	SplitInvariantViolation: "split invariant violation",
	InvalidSplitInput:       "invalid split input",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) Error() string { return k.String() }

// Error is the error returned by every operation of this package.
// It carries the failure Kind and the offending path.
type Error struct {
	Kind Kind
	Path string // offending file or directory, if any
	Msg  string // human readable detail
	Err  error  // underlying error, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// newError is a shorthand to build an *Error with a formatted message.
func newError(kind Kind, path string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...), Err: err}
}
