package pkg

// Sentinel errors for the clog module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrReadConfig is returned when the configuration file cannot be read.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadConfig = MakeErrorf("failed to read configuration")

// ErrParseConfig is returned when the configuration file is not valid YAML
// or its top level is not a mapping.
var ErrParseConfig = MakeErrorf("invalid configuration")

// ErrReadInput is returned when reading messages from standard input fails.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrWriteLine is returned when a log line cannot be written to its output.
var ErrWriteLine = MakeErrorf("failed to write log line")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", in chain order.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap returns a new chain with err appended after the receiver's errors.
// The receiver is not modified, so sentinels can be wrapped freely.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to a copy of the receiver and returns it.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is reports whether target is an Error whose chain is a prefix of e,
// so that a wrapped sentinel matches the sentinel.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !errors.Is(e[i], t[i]) {
			return false
		}
	}

	return true
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
