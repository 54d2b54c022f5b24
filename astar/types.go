package astar

import "github.com/katalvlaran/npuzzle/puzzle"

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds Search's tunable parameters.
type Options struct {
	// InitialCapacity pre-sizes the open heap and closed map.
	InitialCapacity int

	err error
}

// DefaultOptions returns InitialCapacity=65536.
func DefaultOptions() Options {
	return Options{InitialCapacity: 1 << 16}
}

// WithInitialCapacity sets the open/closed pre-sizing.
func WithInitialCapacity(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.InitialCapacity = c
	}
}

// node is one arena slot: a board, its path cost so far, its cached
// heuristic estimate, the direction taken from its predecessor, and
// the predecessor's arena index (-1 for the start board).
type node struct {
	board     puzzle.Board
	g         int
	h         int
	dir       puzzle.Direction
	predIndex int
}

func (n node) f() int { return n.g + n.h }

// heapItem is what actually lives in the open-set heap: an arena
// index plus the f-cost it was pushed (or last updated) with, so the
// heap can order without dereferencing the arena on every compare.
type heapItem struct {
	index int
	f     int
}

func heapLess(a, b heapItem) bool { return a.f > b.f }
func heapEqual(a, b heapItem) bool { return a.index == b.index }

// Result is Search's output.
type Result struct {
	// Path runs start-first, goal-last.
	Path       []puzzle.Board
	Complexity puzzle.Complexity
}
