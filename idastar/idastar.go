package idastar

import (
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/trie"
)

// Search runs IDA* from start to goal under heuristic h, pruning
// branches the automaton t marks Redundant, and returns the
// start-first optimal path. Callers are expected to have already
// confirmed the instance is solvable (see solve.Solve).
func Search(start, goal puzzle.Board, h puzzle.Heuristic, t *trie.Trie) (Result, error) {
	cx := puzzle.Complexity{}
	tau := h(start, goal)

	for {
		var path []puzzle.Board
		found, nextTau := dfs(start, goal, 0, h, t, tau, trie.Match(0), &path, &cx, 0)
		if found {
			return Result{Path: reversed(path), Complexity: cx}, nil
		}
		if nextTau == 0 {
			return Result{}, ErrUnreachable
		}
		tau = nextTau
	}
}

// dfs performs one bounded depth-first pass. On success it returns
// (true, 0) with path populated goal-first (the goal pushed first,
// every ancestor pushed on its own stack frame's unwind). On failure
// it returns (false, minFCost) where minFCost is the smallest f-cost
// strictly greater than tau observed among this node's children, or 0
// if none was.
func dfs(
	board, goal puzzle.Board,
	g int,
	h puzzle.Heuristic,
	t *trie.Trie,
	tau int,
	autoState trie.Transition,
	path *[]puzzle.Board,
	cx *puzzle.Complexity,
	depth int,
) (found bool, minFCost int) {
	cx.InTime++
	if depth > cx.InSize {
		cx.InSize = depth
	}

	if board.IsSolved(goal) {
		*path = append(*path, board)
		return true, 0
	}

	f := g + h(board, goal)
	if f > tau {
		return false, f
	}

	nextTau := 0
	for _, step := range board.SortedNeighbours(goal, h) {
		next, ok := board.Slide(step.Dir)
		if !ok {
			continue
		}
		childState := t.ChangeTrueState(autoState, step.Dir)
		if childState.Kind == trie.KindRedundant {
			continue
		}

		ok2, c := dfs(next, goal, g+step.Cost, h, t, tau, childState, path, cx, depth+1)
		if ok2 {
			*path = append(*path, board)
			return true, 0
		}
		if c > tau && (nextTau == 0 || c < nextTau) {
			nextTau = c
		}
	}

	return false, nextTau
}

// reversed returns path in reverse order, converting the internal
// goal-first accumulation into the start-first convention all three
// search drivers return.
func reversed(path []puzzle.Board) []puzzle.Board {
	out := make([]puzzle.Board, len(path))
	for i, b := range path {
		out[len(path)-1-i] = b
	}
	return out
}
