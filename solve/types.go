package solve

import (
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/trie"
)

// Algorithm selects which search driver Solve routes to.
type Algorithm int

const (
	// AlgoAstar runs the decrease-key A* open/closed-set search.
	AlgoAstar Algorithm = iota
	// AlgoIDAstar runs threshold-deepening IDA* with automaton pruning.
	AlgoIDAstar
	// AlgoGreedy runs the non-optimal depth-first hill-climb.
	AlgoGreedy
)

func (a Algorithm) String() string {
	switch a {
	case AlgoAstar:
		return "astar"
	case AlgoIDAstar:
		return "idastar"
	case AlgoGreedy:
		return "greedy"
	default:
		return "Algorithm(?)"
	}
}

// Options configures Solve.
type Options struct {
	// Algo selects the driver. Zero value is AlgoAstar.
	Algo Algorithm

	// Heuristic is required for AlgoAstar and AlgoIDAstar.
	Heuristic puzzle.Heuristic

	// Automaton is the pruning Trie AlgoIDAstar consults. If nil,
	// Solve builds one on demand via pruning.Build(n, WithMaxDepth(PruningDepth)).
	Automaton *trie.Trie

	// PruningDepth configures the on-demand automaton build when
	// Automaton is nil. Zero selects pruning.DefaultOptions()'s depth.
	PruningDepth int
}

// Result is Solve's normalised output across every algorithm.
type Result struct {
	// Path runs start-first, goal-last.
	Path       []puzzle.Board
	Complexity puzzle.Complexity
	Algo       Algorithm
}
