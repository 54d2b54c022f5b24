package solve

import "errors"

// ErrUnsolvable is returned before any search runs, when the parity
// check proves no move sequence connects start to goal.
var ErrUnsolvable = errors.New("solve: instance is not solvable")

// ErrUnsupportedAlgorithm is returned for an Options.Algo value
// outside the declared enum.
var ErrUnsupportedAlgorithm = errors.New("solve: unsupported algorithm")

// ErrMissingHeuristic is returned when Algo requires a Heuristic and
// Options.Heuristic is nil.
var ErrMissingHeuristic = errors.New("solve: heuristic is required for this algorithm")
