// SPDX-License-Identifier: MIT

package dmat_test

import (
	"testing"

	"github.com/katalvlaran/dmat"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a matrix from a rectangular source or fails the test.
func mustFromRows(t *testing.T, src [][]float64) *dmat.Matrix {
	t.Helper()
	m, err := dmat.NewFromRows(src)
	require.NoError(t, err)

	return m
}

// requireMatrixEqual asserts exact element-wise equality via the package's
// own Equal predicate, with a readable dump on failure.
func requireMatrixEqual(t *testing.T, want, got *dmat.Matrix) {
	t.Helper()
	eq, err := want.Equal(got)
	require.NoError(t, err)
	require.True(t, eq, "want:\n%v\ngot:\n%v", want, got)
}
