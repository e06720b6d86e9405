// SPDX-License-Identifier: MIT
// Package dmat: functional options for the file codec.

package dmat

// DefaultDelimiter separates values within a serialized row when no
// WithDelimiter option is supplied.
const DefaultDelimiter = " "

// codecConfig holds the resolved codec settings for one read or write.
type codecConfig struct {
	delim string
}

// Option adjusts codec behavior for a single WriteFile/ReadFile call.
type Option func(*codecConfig)

// WithDelimiter sets the value separator for writing or the separator rune
// set for reading. The delimiter is validated at use: it must be non-empty
// and free of decimal points and digits, or the call fails with
// ErrBadDelimiter before touching the file.
func WithDelimiter(delim string) Option {
	return func(c *codecConfig) { c.delim = delim }
}

// newCodecConfig applies opts over the defaults.
func newCodecConfig(opts ...Option) codecConfig {
	c := codecConfig{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
