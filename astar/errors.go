package astar

import "errors"

// ErrUnreachable is returned when the open set empties without ever
// popping a goal board.
var ErrUnreachable = errors.New("astar: goal unreachable from start")

// ErrOptionViolation is returned by a With* option constructor given
// an invalid argument.
var ErrOptionViolation = errors.New("astar: invalid option")
