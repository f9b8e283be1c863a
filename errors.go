package evilarc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Kind classifies an Error.
type Kind int

const (
	// ArgumentError means the request itself was malformed, such as
	// a wrong number of input files or a negative depth.
	ArgumentError Kind = iota + 1

	// InputNotFound means the input file is missing, unreadable, or
	// not a regular file.
	InputNotFound

	// UnsupportedFormat means the output file extension does not map
	// to any archive format.
	UnsupportedFormat

	// ArchiveWriteError means creating, appending to, or closing the
	// output archive failed.
	ArchiveWriteError
)

func (k Kind) String() string {
	switch k {
	case ArgumentError:
		return "incorrect arguments"
	case InputNotFound:
		return "invalid input file"
	case UnsupportedFormat:
		return "unsupported archive format"
	case ArchiveWriteError:
		return "writing archive"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every failing operation in this package.
type Error struct {
	Kind Kind

	// Path is the file the error concerns; may be empty.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain,
// or 0 if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind checks if err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// ErrNoMatch is returned if an output path matches no archive format.
var ErrNoMatch = fmt.Errorf("no formats matched")

// combineErrors folds the non-nil errors into one. A single error is
// returned as-is so callers can still inspect it directly.
func combineErrors(errs ...error) error {
	merr := multierror.Append(nil, errs...)
	switch len(merr.Errors) {
	case 0:
		return nil
	case 1:
		return merr.Errors[0]
	}
	merr.ErrorFormat = func(es []error) string {
		msgs := make([]string, len(es))
		for i, e := range es {
			msgs[i] = e.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return merr
}
