// SPDX-License-Identifier: MIT
// Package dmat: sentinel error set.
// This file defines the package-level sentinel errors used across dmat. All
// operations return these sentinels (possibly wrapped with call-site context
// via fmt.Errorf("...: %w", err)) and tests check them via errors.Is. No
// operation panics on user-triggered conditions.

package dmat

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "dmat: ..." so failures remain greppable in
// logs after arbitrary wrapping.

var (
	// ErrBadShape is returned by construction paths when the requested or
	// supplied shape is unusable: non-positive dimensions, a jagged 2-D
	// source, a flat value list whose length is not rows*cols, or inputs to
	// combine whose common dimension disagrees.
	ErrBadShape = errors.New("dmat: invalid shape")

	// ErrDimensionMismatch is returned by arithmetic kernels when operand
	// shapes are incompatible for the requested operation: Add/Sub on
	// different shapes, or Mul where a.Cols() != b.Rows(). The wrapping
	// message always states both shapes.
	ErrDimensionMismatch = errors.New("dmat: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid range for its dimension. At/Set/SwapRows/SwapCols return this,
	// never panic.
	ErrOutOfRange = errors.New("dmat: index out of range")

	// ErrBadDelimiter is returned by the text codec when a requested
	// delimiter cannot produce an unambiguous rendering: it is empty, or it
	// contains a decimal point or digit rune.
	ErrBadDelimiter = errors.New("dmat: unusable delimiter")

	// ErrNilMatrix indicates that an operation requiring a matrix operand
	// was invoked with a nil one (receiver or argument).
	ErrNilMatrix = errors.New("dmat: nil matrix operand")
)

// ParseError reports a file whose content could not be tokenized into
// numbers. It carries the file path, the 1-based line number and the
// offending line text; Unwrap exposes the underlying strconv cause so
// errors.As / errors.Is keep working through it.
//
// A ParseError aborts the whole read: ReadFile never returns a partially
// filled Matrix alongside one.
type ParseError struct {
	Path string // file being read
	Line int    // 1-based line number within the file
	Text string // offending line, verbatim
	Err  error  // underlying numeric-parse cause
}

// Error formats as "dmat: <path>:<line>: <text>".
func (e *ParseError) Error() string {
	return fmt.Sprintf("dmat: %s:%d: %s", e.Path, e.Line, e.Text)
}

// Unwrap returns the underlying parse cause.
func (e *ParseError) Unwrap() error { return e.Err }
