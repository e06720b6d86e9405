// SPDX-License-Identifier: MIT
// Package dmat: arithmetic kernels and comparison predicates.
// Allocating kernels (Add, Sub, Mul, Scale, Transpose) validate fail-fast,
// never mutate their operands and return a freshly allocated result that
// shares no storage with either input. In-place variants live on the
// receiver and are named explicitly so the aliasing contract stays visible
// at every call site.

package dmat

import "fmt"

// Operation name constants for uniform error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opEqual      = "Equal"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opWriteFile  = "WriteFile"
	opReadFile   = "ReadFile"
	opFormat     = "Format"
	opFromGonum  = "FromGonum"
	opUnmarshal  = "UnmarshalJSON"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b elementwise for sign in {+1, -1}.
// Shared kernel behind Add and Sub: one validation path, one allocation,
// one flat loop in fixed 0..n-1 order.
func addSub(a, b *Matrix, sign float64, tag string) (*Matrix, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	data := make([]float64, a.size)
	for idx := range data {
		data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return newTrusted(a.rows, a.cols, data), nil
}

// Add computes the elementwise sum C = A + B into a fresh matrix.
// Errors: ErrNilMatrix (absent operand), ErrDimensionMismatch (the message
// states both shapes). Complexity: O(rows*cols).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B into a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (both shapes in the message).
// Complexity: O(rows*cols).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product C = A × B with C[i,j] accumulating
// sum over k of A[i,k]*B[k,j], producing an a.Rows()×b.Cols() result.
// Stage 1 (Validate): operands non-nil, a.Cols() == b.Rows().
// Stage 2 (Execute): fixed i->k->j loop order over the flat row-major
// stores. Every term is accumulated, so NaN and Inf operands propagate
// through zero factors exactly as IEEE 754 multiplication dictates.
// Errors: ErrNilMatrix, ErrDimensionMismatch (both shapes in the message).
// Complexity: O(a.Rows() * a.Cols() * b.Cols()).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	aRows, inner, bCols := a.rows, a.cols, b.cols
	data := make([]float64, aRows*bCols)
	for i := 0; i < aRows; i++ {
		baseA := i * inner
		baseC := i * bCols
		for k := 0; k < inner; k++ {
			av := a.data[baseA+k]
			baseB := k * bCols
			for j := 0; j < bCols; j++ {
				data[baseC+j] += av * b.data[baseB+j]
			}
		}
	}

	return newTrusted(aRows, bCols, data), nil
}

// Scale returns a fresh matrix whose elements are k * m[i,j]. Scaling by 0
// yields the zero matrix of m's shape; scaling by 1 yields a matrix equal
// to m. Errors: ErrNilMatrix. Complexity: O(rows*cols).
func Scale(m *Matrix, k float64) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	data := make([]float64, m.size)
	for idx, v := range m.data {
		data[idx] = v * k
	}

	return newTrusted(m.rows, m.cols, data), nil
}

// Transpose returns a fresh cols×rows matrix with out[j,i] = m[i,j].
// Transposing twice reproduces a matrix equal to the original.
// Errors: ErrNilMatrix. Complexity: O(rows*cols).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	data := make([]float64, m.size)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			data[j*m.rows+i] = m.data[base+j]
		}
	}

	return newTrusted(m.cols, m.rows, data), nil
}

// AddInPlace computes m += b, mutating the receiver and leaving b untouched.
// Errors: ErrNilMatrix, ErrDimensionMismatch (both shapes in the message).
// Complexity: O(rows*cols).
func (m *Matrix) AddInPlace(b *Matrix) error { return m.addSubInPlace(b, +1, opAddInPlace) }

// SubInPlace computes m -= b, mutating the receiver and leaving b untouched.
// Errors: ErrNilMatrix, ErrDimensionMismatch (both shapes in the message).
// Complexity: O(rows*cols).
func (m *Matrix) SubInPlace(b *Matrix) error { return m.addSubInPlace(b, -1, opSubInPlace) }

// addSubInPlace is the mutating counterpart of addSub.
func (m *Matrix) addSubInPlace(b *Matrix, sign float64, tag string) error {
	if err := validateBinary(m, b); err != nil {
		return opErrorf(tag, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return opErrorf(tag, err)
	}

	for idx := range m.data {
		m.data[idx] += sign * b.data[idx]
	}

	return nil
}

// ScaleInPlace multiplies every element of the receiver by k and returns the
// receiver for chaining. No failure mode. Complexity: O(rows*cols).
func (m *Matrix) ScaleInPlace(k float64) *Matrix {
	for idx := range m.data {
		m.data[idx] *= k
	}

	return m
}

// SameShape reports whether m and b share the same (rows, cols) pair,
// regardless of contents. A nil operand on either side reports false; the
// predicate has no failure mode.
func (m *Matrix) SameShape(b *Matrix) bool {
	if m == nil || b == nil {
		return false
	}

	return m.rows == b.rows && m.cols == b.cols
}

// Equal reports whether m and b have the same shape and every corresponding
// element compares equal under native float64 equality (no tolerance).
// Comparing against a nil operand is a contract violation and returns
// ErrNilMatrix. The predicate is reflexive via an identity shortcut, and
// symmetric and transitive under exact equality.
// Complexity: O(rows*cols), O(1) on shape mismatch or identity.
func (m *Matrix) Equal(b *Matrix) (bool, error) {
	if err := validateBinary(m, b); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if m == b {
		return true, nil
	}
	if !m.SameShape(b) {
		return false, nil
	}

	for idx := range m.data {
		if m.data[idx] != b.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// IsSymmetric reports whether m equals its own transpose: false immediately
// for non-square shapes, otherwise true iff m[i,j] == m[j,i] for every
// off-diagonal pair, under exact float64 equality.
// Complexity: O(rows*cols) worst case, upper triangle scanned once.
func (m *Matrix) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}

	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}
