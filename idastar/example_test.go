package idastar_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/idastar"
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/trie"
)

func ExampleSearch() {
	goal := puzzle.Spiral(3)
	start, _ := goal.Slide(puzzle.Right)

	res, err := idastar.Search(start, goal, heuristic.Manhattan, trie.New())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Path))
	// Output:
	// 2
}
