package cli

import (
	"errors"
)

// Kind separates failures by who has to fix them.
type Kind int

const (
	// KindArgument covers missing or malformed arguments and settings.
	KindArgument Kind = iota + 1
	// KindIO covers unreadable inputs and unwritable outputs.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument error"
	case KindIO:
		return "i/o error"
	default:
		return "error"
	}
}

// ExitCode is the process status reported for the kind.
func (k Kind) ExitCode() int {
	if k == KindArgument {
		return 2
	}
	return 1
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func ArgumentError(err error) error { return &Error{Kind: KindArgument, Err: err} }

func IOError(err error) error { return &Error{Kind: KindIO, Err: err} }

// KindOf reports the kind of err. Unclassified errors count as I/O errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}

// ExitCode maps err to a process exit status, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
