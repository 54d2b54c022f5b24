package pruning

import "errors"

var (
	// ErrBadDimension is returned when N < 1.
	ErrBadDimension = errors.New("pruning: dimension must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pruning: invalid option supplied")
)
