package greedy

import "github.com/katalvlaran/npuzzle/puzzle"

// Search walks forward from start, committing to the first unvisited
// successor at each step and backtracking on a dead end, until goal
// is reached or the path stack empties. It makes no optimality claim.
// Callers are expected to have already confirmed the instance is
// solvable (see solve.Solve).
func Search(start, goal puzzle.Board) (Result, error) {
	stack := []puzzle.Board{start}
	visited := map[uint64]bool{start.Hash(): true}
	cx := puzzle.Complexity{InSize: 1}

	for {
		if len(stack) == 0 {
			return Result{}, ErrUnreachable
		}
		if len(stack) > cx.InSize {
			cx.InSize = len(stack)
		}
		current := stack[len(stack)-1]
		cx.InTime++

		if current.IsSolved(goal) {
			return Result{Path: stack, Complexity: cx}, nil
		}

		advanced := false
		for _, step := range current.Neighbours() {
			next, ok := current.Slide(step.Dir)
			if !ok {
				continue
			}
			if visited[next.Hash()] {
				continue
			}
			visited[next.Hash()] = true
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}
