// SPDX-License-Identifier: MIT
// Package dmat: JSON codec.
// A matrix marshals as nested JSON arrays, one inner array per row. Decoding
// funnels through the rectangular constructor so a jagged or empty payload
// fails with ErrBadShape exactly like any other construction path.

package dmat

import "github.com/goccy/go-json"

// MarshalJSON renders the matrix as [[row 0 values], [row 1 values], ...].
func (m *Matrix) MarshalJSON() ([]byte, error) {
	rows := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		rows[i] = m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
	}

	return json.Marshal(rows)
}

// UnmarshalJSON replaces the receiver's contents with the decoded matrix.
// Errors: any JSON syntax error, or ErrBadShape for jagged or empty payloads.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return opErrorf(opUnmarshal, err)
	}
	nm, err := NewFromRows(rows)
	if err != nil {
		return opErrorf(opUnmarshal, err)
	}
	*m = *nm

	return nil
}
