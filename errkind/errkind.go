// SPDX-License-Identifier: MIT

// Package errkind defines the error kinds shared by every analysis stage.
//
// Stages return one of the sentinels below, usually wrapped in a *PairError
// that records the offending region indices. Callers match kinds with
// errors.Is and recover indices with errors.As:
//
//	var pe *errkind.PairError
//	if errors.Is(err, errkind.ErrDegenerateStatistics) && errors.As(err, &pe) {
//		skip(pe.I, pe.J)
//	}
package errkind

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputShape reports mismatched dimensions, a non-square or
	// asymmetric count matrix, or counts that cannot come from set sizes.
	ErrInvalidInputShape = errors.New("errkind: invalid input shape")

	// ErrDegenerateStatistics reports a zero denominator or an undefined
	// likelihood ratio. No NaN or Inf is ever substituted for it.
	ErrDegenerateStatistics = errors.New("errkind: degenerate statistics")

	// ErrDisconnectedGraph reports a path-length metric requested on a graph
	// that is not connected.
	ErrDisconnectedGraph = errors.New("errkind: graph is disconnected")
)

// PairError attaches region indices to an error kind.
// For single-region failures I == J.
type PairError struct {
	Kind   error
	I, J   int
	Detail string
}

// Error implements error.
func (e *PairError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at (%d,%d)", e.Kind, e.I, e.J)
	}

	return fmt.Sprintf("%v at (%d,%d): %s", e.Kind, e.I, e.J, e.Detail)
}

// Unwrap exposes Kind to errors.Is.
func (e *PairError) Unwrap() error { return e.Kind }

// Pair builds a *PairError; detail is formatted with fmt.Sprintf.
func Pair(kind error, i, j int, format string, args ...any) error {
	return &PairError{Kind: kind, I: i, J: j, Detail: fmt.Sprintf(format, args...)}
}
