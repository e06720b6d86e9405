// SPDX-License-Identifier: MIT
// Package dmat: bridge to gonum's dense matrix.
// Decompositions (LU, QR, eigen) are out of scope here; callers that need
// them convert through this bridge. Both directions deep-copy, so the two
// representations never alias.

package dmat

import "gonum.org/v1/gonum/mat"

// ToGonum returns a gonum mat.Dense with the same shape and contents.
// Complexity: O(rows*cols).
func (m *Matrix) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum builds a Matrix from a gonum mat.Dense, deep-copying its
// contents. Errors: ErrNilMatrix for a nil input, ErrBadShape for an empty
// one. Complexity: O(rows*cols).
func FromGonum(d *mat.Dense) (*Matrix, error) {
	if d == nil {
		return nil, opErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := d.Dims()
	if rows < 1 || cols < 1 {
		return nil, opErrorf(opFromGonum, ErrBadShape)
	}

	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = d.At(i, j)
		}
	}

	return newTrusted(rows, cols, data), nil
}
