// SPDX-License-Identifier: MIT
// Package dmat: construction recipes beyond the plain zero matrix.
// Every public constructor validates shape and deep-copies caller-supplied
// storage; only internal paths that build fresh backing slices go through
// the trusted factory.

package dmat

import "fmt"

// NewFromRows builds a matrix from a rectangular 2-D source, deep-copying
// every row. Later mutation of src never affects the result.
// Stage 1 (Validate): src non-empty, first row non-empty, every row length
// equal to the first; a jagged source fails with ErrBadShape naming the
// diverging row and both lengths.
// Stage 2 (Copy): flatten row-major into fresh storage.
// Complexity: O(rows*cols).
func NewFromRows(src [][]float64) (*Matrix, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: empty source: %w", ErrBadShape)
	}
	rows, cols := len(src), len(src[0])
	for i := 1; i < rows; i++ {
		if len(src[i]) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d (row %d %v): %w",
				i, len(src[i]), cols, i, src[i], ErrBadShape)
		}
	}

	data := make([]float64, 0, rows*cols)
	for _, row := range src {
		data = append(data, row...)
	}

	return newTrusted(rows, cols, data), nil
}

// NewFromFlat builds a rows×cols matrix from a row-major flat value list:
// all of row 0 left to right, then row 1, and so on. The value count must be
// exactly rows*cols; too many and too few are both ErrBadShape, reported
// before any instance exists. vals is copied, never aliased.
// Complexity: O(rows*cols).
func NewFromFlat(rows, cols int, vals []float64) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewFromFlat(%d,%d): %w", rows, cols, ErrBadShape)
	}
	size := rows * cols
	if len(vals) > size {
		return nil, fmt.Errorf("NewFromFlat(%d,%d): %d values, too many for size %d: %w",
			rows, cols, len(vals), size, ErrBadShape)
	}
	if len(vals) < size {
		return nil, fmt.Errorf("NewFromFlat(%d,%d): %d values, too few for size %d: %w",
			rows, cols, len(vals), size, ErrBadShape)
	}

	data := make([]float64, size)
	copy(data, vals)

	return newTrusted(rows, cols, data), nil
}

// NewDiagonal builds an n×n matrix with entries on the main diagonal and 0.0
// elsewhere, n being the number of entries supplied.
// Complexity: O(n^2) zeroing plus O(n) diagonal writes.
func NewDiagonal(entries ...float64) (*Matrix, error) {
	n := len(entries)
	if n == 0 {
		return nil, fmt.Errorf("NewDiagonal: no entries: %w", ErrBadShape)
	}

	data := make([]float64, n*n)
	for i, v := range entries {
		data[i*n+i] = v
	}

	return newTrusted(n, n, data), nil
}

// NewIdentity builds the n×n identity matrix: ones on the diagonal, zeros
// elsewhere. Equivalent to NewDiagonal with n ones.
// Complexity: O(n^2).
func NewIdentity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrBadShape)
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}

	return newTrusted(n, n, data), nil
}

// NewRowVector builds a 1×k matrix from k entries.
func NewRowVector(entries ...float64) (*Matrix, error) {
	return NewFromFlat(1, len(entries), entries)
}

// NewColumnVector builds a k×1 matrix from k entries.
func NewColumnVector(entries ...float64) (*Matrix, error) {
	return NewFromFlat(len(entries), 1, entries)
}

// CombineHorizontally places the given matrices side by side, in argument
// order: the result has the common row count and the sum of the inputs'
// column counts. Every input must have the same row count as the first;
// a disagreeing input fails with ErrBadShape naming its index and shape.
// Complexity: O(result rows * result cols).
func CombineHorizontally(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("CombineHorizontally: no inputs: %w", ErrBadShape)
	}
	for k, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("CombineHorizontally: input %d: %w", k, ErrNilMatrix)
		}
	}

	rows := ms[0].rows
	cols := ms[0].cols
	for k := 1; k < len(ms); k++ {
		if ms[k].rows != rows {
			return nil, fmt.Errorf("CombineHorizontally: input %d is (%d,%d), want %d rows: %w",
				k, ms[k].rows, ms[k].cols, rows, ErrBadShape)
		}
		cols += ms[k].cols
	}

	// Copy each input's rows into its column band of the result.
	data := make([]float64, rows*cols)
	pos := 0 // starting column of the current input
	for _, m := range ms {
		for i := 0; i < rows; i++ {
			copy(data[i*cols+pos:i*cols+pos+m.cols], m.data[i*m.cols:(i+1)*m.cols])
		}
		pos += m.cols
	}

	return newTrusted(rows, cols, data), nil
}

// CombineVertically stacks the given matrices, in argument order: the result
// has the common column count and the sum of the inputs' row counts. Every
// input must have the same column count as the first; a disagreeing input
// fails with ErrBadShape naming its index and shape.
// Complexity: O(result rows * result cols).
func CombineVertically(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("CombineVertically: no inputs: %w", ErrBadShape)
	}
	for k, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("CombineVertically: input %d: %w", k, ErrNilMatrix)
		}
	}

	cols := ms[0].cols
	rows := ms[0].rows
	for k := 1; k < len(ms); k++ {
		if ms[k].cols != cols {
			return nil, fmt.Errorf("CombineVertically: input %d is (%d,%d), want %d columns: %w",
				k, ms[k].rows, ms[k].cols, cols, ErrBadShape)
		}
		rows += ms[k].rows
	}

	// Row-major stacking is a single contiguous copy per input.
	data := make([]float64, 0, rows*cols)
	for _, m := range ms {
		data = append(data, m.data...)
	}

	return newTrusted(rows, cols, data), nil
}
