package idastar

import "github.com/katalvlaran/npuzzle/puzzle"

// Result is Search's output.
type Result struct {
	// Path runs start-first, goal-last.
	Path       []puzzle.Board
	Complexity puzzle.Complexity
}
