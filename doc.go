// SPDX-License-Identifier: MIT

// Package dmat provides a small dense matrix of float64 values with strict,
// fail-fast validation and a delimited-text file codec.
//
// The package centers on one concrete type, Matrix: a fixed-shape, row-major
// container whose dimensions never change after construction. Construction
// from caller-supplied data always validates rectangularity and always deep
// copies, so a Matrix never aliases external storage.
//
// The dmat package provides:
//
//   - Construction recipes: zero matrix, rectangular 2-D source, row-major
//     flat list, diagonal, identity, row/column vectors, clone, and
//     horizontal/vertical combination of several matrices.
//   - Element access with bounds-checked At/Set and in-place row/column swap.
//   - Arithmetic kernels: Add, Sub, Mul (matrix product), Scale, Transpose,
//     each allocating a fresh result, plus explicit in-place variants
//     (AddInPlace, SubInPlace, ScaleInPlace) on the receiver.
//   - Predicates: SameShape, Equal (exact float64 equality), IsSymmetric.
//   - A text codec: one matrix row per line, values joined by a configurable
//     delimiter (default single space), with WriteFile/ReadFile round-trip.
//   - JSON (un)marshalling and a bridge to gonum's mat.Dense for callers that
//     need decompositions beyond this package's scope.
//
// All user-triggered failures surface as package sentinel errors matched via
// errors.Is (ErrBadShape, ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix,
// ErrBadDelimiter) or as a *ParseError carrying file, line and text; nothing
// panics and nothing terminates the process.
//
// A Matrix is not safe for concurrent mutation; guard shared instances
// externally. Results of allocating operations never alias their operands.
package dmat
