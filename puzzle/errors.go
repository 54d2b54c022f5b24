package puzzle

import "errors"

// Sentinel errors returned by New (Parse also returns ErrBadDimension).
var (
	// ErrBadDimension is returned when N < 1.
	ErrBadDimension = errors.New("puzzle: dimension must be >= 1")

	// ErrBadLength is returned when len(tiles) != N*N.
	ErrBadLength = errors.New("puzzle: tile sequence length must equal N*N")

	// ErrNotPermutation is returned when tiles is not a permutation of 0..N*N-1.
	ErrNotPermutation = errors.New("puzzle: tiles must be a permutation of 0..N*N-1")
)

// Sentinel errors returned by Parse.
var (
	// ErrEmptyInput is returned when the input contains no tokens at all.
	ErrEmptyInput = errors.New("puzzle: empty input")

	// ErrBadRowCount is returned when fewer or more than N data rows are present.
	ErrBadRowCount = errors.New("puzzle: row count does not match N")

	// ErrBadColumnCount is returned when a data row does not contain exactly N tokens.
	ErrBadColumnCount = errors.New("puzzle: column count does not match N")

	// ErrNonIntegerToken is returned when a token cannot be parsed as a non-negative integer.
	ErrNonIntegerToken = errors.New("puzzle: token is not a valid non-negative integer")

	// ErrMissingValue is returned when the assembled tiles do not contain every
	// value in 0..N*N-1 exactly once.
	ErrMissingValue = errors.New("puzzle: tile sequence is missing a required value")
)
