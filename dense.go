// SPDX-License-Identifier: MIT
// Package dmat: the Matrix type and its element-level surface.
// Matrix is a row-major container of float64 values with a fixed shape,
// storing elements in a single flat slice for cache friendliness.

package dmat

import (
	"fmt"
)

// Matrix is a fixed-shape, row-major matrix of float64 values.
// rows and cols are both >= 1 for every constructed instance; size caches
// rows*cols. Only element values ever mutate; the shape is immutable for the
// lifetime of the instance.
type Matrix struct {
	rows, cols int       // dimensions, both positive
	size       int       // rows * cols, cached at construction
	data       []float64 // flat backing storage, length == size
}

// methodErrorf wraps an underlying error with Matrix method context.
func methodErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// New creates a rows×cols matrix with every element 0.0.
// Stage 1 (Validate): rows and cols must be positive.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newTrusted(rows, cols, make([]float64, rows*cols)), nil
}

// newTrusted wraps an already-valid flat store without copying or
// re-validating. Internal factory paths (arithmetic results, diagonal
// construction, codec assembly) own data exclusively and guarantee
// len(data) == rows*cols with rows, cols >= 1; public constructors must
// never hand caller-visible slices to this path.
func newTrusted(rows, cols int, data []float64) *Matrix {
	return &Matrix{rows: rows, cols: cols, size: rows * cols, data: data}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Size returns rows*cols. Complexity: O(1).
func (m *Matrix) Size() int { return m.size }

// index computes the flat offset for (i, j) or reports ErrOutOfRange.
// The method name is threaded through so the wrapped error names the
// public entry point, not this helper.
func (m *Matrix) index(method string, i, j int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, methodErrorf(method, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.cols {
		return 0, methodErrorf(method, i, j, ErrOutOfRange)
	}

	return i*m.cols + j, nil
}

// At retrieves the element at (i, j).
// Returns ErrOutOfRange when either index is outside its dimension.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.index("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (i, j), mutating the receiver in place.
// Returns ErrOutOfRange when either index is outside its dimension.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.index("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns an independent deep copy of the receiver. Mutating the clone
// never affects the original and vice versa.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return newTrusted(m.rows, m.cols, cp)
}
