// SPDX-License-Identifier: MIT

package dmat_test

import (
	"testing"

	"github.com/katalvlaran/dmat"
	"github.com/stretchr/testify/require"
)

func TestSwapRows(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.SwapRows(0, 2))
	requireMatrixEqual(t, mustFromRows(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}), m)

	// Swapping back restores the original.
	require.NoError(t, m.SwapRows(2, 0))
	requireMatrixEqual(t, mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}), m)
}

func TestSwapCols(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.SwapCols(0, 2))
	requireMatrixEqual(t, mustFromRows(t, [][]float64{{3, 2, 1}, {6, 5, 4}}), m)
}

func TestSwap_EqualIndicesPolicy(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	before := m.Clone()

	// Equal indices inside bounds: guaranteed no-op.
	require.NoError(t, m.SwapRows(1, 1))
	require.NoError(t, m.SwapCols(0, 0))
	requireMatrixEqual(t, before, m)

	// Equal indices outside bounds still fail.
	require.ErrorIs(t, m.SwapRows(5, 5), dmat.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, -1), dmat.ErrOutOfRange)
}

func TestSwap_OutOfRange(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.ErrorIs(t, m.SwapRows(0, 2), dmat.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 1), dmat.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(0, 2), dmat.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(3, 1), dmat.ErrOutOfRange)
}

func TestTranspose_RoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := dmat.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	requireMatrixEqual(t, mustFromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), tr)

	back, err := dmat.Transpose(tr)
	require.NoError(t, err)
	requireMatrixEqual(t, m, back)
}

func TestTranspose_DiagonalIsFixedPoint(t *testing.T) {
	d, err := dmat.NewDiagonal(1, 2, 3)
	require.NoError(t, err)

	tr, err := dmat.Transpose(d)
	require.NoError(t, err)
	requireMatrixEqual(t, d, tr)
}

func TestTranspose_Nil(t *testing.T) {
	_, err := dmat.Transpose(nil)
	require.ErrorIs(t, err, dmat.ErrNilMatrix)
}
