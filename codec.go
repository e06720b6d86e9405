// SPDX-License-Identifier: MIT
// Package dmat: delimited-text codec.
// A matrix serializes as one line per row, values joined by a delimiter
// (default single space), lines separated by a single newline and no
// trailing newline after the last line. No header and no shape metadata:
// the shape is inferred on read from the line count and the first line's
// token count. Reading treats the delimiter as a set of separator runes,
// consistent with the write side for every legal delimiter.

package dmat

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// formatValue renders v in its shortest round-trip decimal form, keeping an
// explicit fractional part for integral finite values so that 1 renders as
// "1.0". Scientific notation from the shortest form is preserved as is.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}

	return s
}

// Format renders the matrix as Rows() lines, each line the Cols() values
// joined by delim. The delimiter must be non-empty and free of decimal
// points and digits; a violation fails with ErrBadDelimiter before any
// rendering occurs.
// Complexity: O(rows*cols).
func (m *Matrix) Format(delim string) (string, error) {
	if err := validateDelimiter(delim); err != nil {
		return "", opErrorf(opFormat, err)
	}

	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(delim)
			}
			sb.WriteString(formatValue(m.data[base+j]))
		}
	}

	return sb.String(), nil
}

// String implements fmt.Stringer using the default single-space delimiter.
func (m *Matrix) String() string {
	s, _ := m.Format(DefaultDelimiter)

	return s
}

// WriteFile writes the delimited rendering of m to path, creating or
// truncating the file. Use WithDelimiter to override the default separator.
// Errors: ErrNilMatrix, ErrBadDelimiter, and any underlying file-system
// failure (matched through errors.Is against os sentinels).
func WriteFile(m *Matrix, path string, opts ...Option) error {
	if err := validateNotNil(m); err != nil {
		return opErrorf(opWriteFile, err)
	}
	cfg := newCodecConfig(opts...)
	s, err := m.Format(cfg.delim)
	if err != nil {
		return opErrorf(opWriteFile, err)
	}
	if err = os.WriteFile(path, []byte(s), 0o644); err != nil {
		return opErrorf(opWriteFile, err)
	}

	return nil
}

// ReadFile reads a delimited matrix from path. Each non-empty line is split
// on the delimiter rune set into one row of values; after all lines are
// read the rows must form a non-empty rectangle or construction fails with
// ErrBadShape. A token that does not parse as a float64 aborts the whole
// read with a *ParseError carrying the path, 1-based line number and line
// text; no partial matrix is ever returned. Lines grow without a fixed
// cap, so any row WriteFile can produce reads back.
// Errors: ErrBadDelimiter, *ParseError, ErrBadShape, and any underlying
// file-system failure.
func ReadFile(path string, opts ...Option) (*Matrix, error) {
	cfg := newCodecConfig(opts...)
	if err := validateDelimiter(cfg.delim); err != nil {
		return nil, opErrorf(opReadFile, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, opErrorf(opReadFile, err)
	}
	defer f.Close()

	isSep := func(r rune) bool { return strings.ContainsRune(cfg.delim, r) }

	var src [][]float64
	br := bufio.NewReader(f)
	lineNo := 0
	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, opErrorf(opReadFile, rerr)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lineNo++
			tokens := strings.FieldsFunc(line, isSep)
			row := make([]float64, len(tokens))
			for j, tok := range tokens {
				v, perr := strconv.ParseFloat(tok, 64)
				if perr != nil {
					return nil, &ParseError{Path: path, Line: lineNo, Text: line, Err: perr}
				}
				row[j] = v
			}
			src = append(src, row)
		} else if rerr == nil {
			lineNo++
		}
		if rerr == io.EOF {
			break
		}
	}

	// Rectangularity and the non-empty invariant are enforced by the
	// rectangular constructor, which also takes ownership via deep copy.
	m, err := NewFromRows(src)
	if err != nil {
		return nil, opErrorf(opReadFile, err)
	}

	return m, nil
}
