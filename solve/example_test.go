package solve_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/solve"
)

func ExampleSolve() {
	goal := puzzle.Spiral(3)
	start, _ := goal.Slide(puzzle.Right)

	res, err := solve.Solve(start, goal, solve.Options{Algo: solve.AlgoAstar, Heuristic: heuristic.Manhattan})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Path))
	// Output:
	// 2
}
