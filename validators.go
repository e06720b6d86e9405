// SPDX-License-Identifier: MIT
// Package dmat: centralized validation helpers.
// A single source of truth for nil/shape/delimiter checks so kernels and the
// codec stay minimal. Validators return sentinel errors with just enough
// context; call sites add their operation tag on top.

package dmat

import (
	"fmt"
	"strings"
	"unicode"
)

// validateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func validateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions. Both operands are
// assumed non-nil (callers validate first). The message states both shapes.
// Complexity: O(1).
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("(%d,%d) != (%d,%d): %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows for the matrix product.
// Both operands are assumed non-nil. The message states both shapes.
// Complexity: O(1).
func validateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return fmt.Errorf("(%d,%d) x (%d,%d): %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// validateBinary is the composite NotNil(a) -> NotNil(b) guard shared by
// every two-operand operation.
func validateBinary(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}

	return validateNotNil(b)
}

// validateDelimiter rejects delimiters that would make the serialized form
// ambiguous to re-parse: the empty string, and any delimiter containing a
// decimal point or a digit rune. The check runs before any rendering.
// Complexity: O(len(delim)).
func validateDelimiter(delim string) error {
	if delim == "" {
		return fmt.Errorf("empty delimiter: %w", ErrBadDelimiter)
	}
	if strings.ContainsRune(delim, '.') {
		return fmt.Errorf("delimiter %q contains a decimal point: %w", delim, ErrBadDelimiter)
	}
	for _, r := range delim {
		if unicode.IsDigit(r) {
			return fmt.Errorf("delimiter %q contains a digit: %w", delim, ErrBadDelimiter)
		}
	}

	return nil
}
