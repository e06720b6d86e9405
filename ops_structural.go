// SPDX-License-Identifier: MIT
// Package dmat: in-place structural operations.
// Row and column swaps mutate the receiver; the shape never changes.

package dmat

// SwapRows exchanges rows i1 and i2 in place.
// Policy: equal indices inside bounds are a guaranteed no-op, but equal
// indices outside bounds still fail with ErrOutOfRange; the equality
// short-circuit never masks an invalid index.
// Complexity: O(cols).
func (m *Matrix) SwapRows(i1, i2 int) error {
	if i1 < 0 || i1 >= m.rows {
		return methodErrorf("SwapRows", i1, i2, ErrOutOfRange)
	}
	if i2 < 0 || i2 >= m.rows {
		return methodErrorf("SwapRows", i1, i2, ErrOutOfRange)
	}
	if i1 == i2 {
		return nil
	}

	a := m.data[i1*m.cols : (i1+1)*m.cols]
	b := m.data[i2*m.cols : (i2+1)*m.cols]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// SwapCols exchanges columns j1 and j2 in place, element by element across
// every row. The bounds and equality policy match SwapRows.
// Complexity: O(rows).
func (m *Matrix) SwapCols(j1, j2 int) error {
	if j1 < 0 || j1 >= m.cols {
		return methodErrorf("SwapCols", j1, j2, ErrOutOfRange)
	}
	if j2 < 0 || j2 >= m.cols {
		return methodErrorf("SwapCols", j1, j2, ErrOutOfRange)
	}
	if j1 == j2 {
		return nil
	}

	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		m.data[base+j1], m.data[base+j2] = m.data[base+j2], m.data[base+j1]
	}

	return nil
}
