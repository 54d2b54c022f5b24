package solve

import (
	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/greedy"
	"github.com/katalvlaran/npuzzle/idastar"
	"github.com/katalvlaran/npuzzle/pruning"
	"github.com/katalvlaran/npuzzle/puzzle"
)

// Solve validates that start can reach goal, then routes to the
// algorithm named by opts.Algo.
func Solve(start, goal puzzle.Board, opts Options) (Result, error) {
	if !start.IsSolvable(goal) {
		return Result{}, ErrUnsolvable
	}

	switch opts.Algo {
	case AlgoAstar:
		if opts.Heuristic == nil {
			return Result{}, ErrMissingHeuristic
		}
		res, err := astar.Search(start, goal, opts.Heuristic)
		if err != nil {
			return Result{}, err
		}
		return Result{Path: res.Path, Complexity: res.Complexity, Algo: AlgoAstar}, nil

	case AlgoIDAstar:
		if opts.Heuristic == nil {
			return Result{}, ErrMissingHeuristic
		}
		automaton := opts.Automaton
		if automaton == nil {
			buildOpts := []pruning.Option{}
			if opts.PruningDepth > 0 {
				buildOpts = append(buildOpts, pruning.WithMaxDepth(opts.PruningDepth))
			}
			built, err := pruning.Build(start.N(), buildOpts...)
			if err != nil {
				return Result{}, err
			}
			automaton = built.Trie
		}
		res, err := idastar.Search(start, goal, opts.Heuristic, automaton)
		if err != nil {
			return Result{}, err
		}
		return Result{Path: res.Path, Complexity: res.Complexity, Algo: AlgoIDAstar}, nil

	case AlgoGreedy:
		res, err := greedy.Search(start, goal)
		if err != nil {
			return Result{}, err
		}
		return Result{Path: res.Path, Complexity: res.Complexity, Algo: AlgoGreedy}, nil

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
