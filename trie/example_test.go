package trie_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/trie"
)

func ExampleTrie_AddWord() {
	tr := trie.New()
	tr.AddWord([]puzzle.Direction{puzzle.Right, puzzle.Right})
	tr.UpdateFailure()

	fmt.Println(tr.MatchWord([]puzzle.Direction{puzzle.Right, puzzle.Right}).Kind)
	fmt.Println(tr.MatchWord([]puzzle.Direction{puzzle.Right, puzzle.Left}).Kind)
	// Output:
	// Redundant
	// Match
}
