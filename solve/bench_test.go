package solve_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/solve"
)

func BenchmarkSolveAstarDepth8(b *testing.B) {
	start, goal := eightMovesFromGoal()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solve.Solve(start, goal, solve.Options{Algo: solve.AlgoAstar, Heuristic: heuristic.ManhattanLinearConflict})
	}
}

func eightMovesFromGoal() (start, goal puzzle.Board) {
	goal = puzzle.Spiral(3)
	start = goal
	dirs := []puzzle.Direction{puzzle.Right, puzzle.Up, puzzle.Left, puzzle.Down, puzzle.Right, puzzle.Up, puzzle.Left, puzzle.Down}
	for _, d := range dirs {
		if next, ok := start.Slide(d); ok {
			start = next
		}
	}
	return start, goal
}
