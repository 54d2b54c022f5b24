package pruning_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/pruning"
)

func ExampleBuild() {
	res, err := pruning.Build(3, pruning.WithMaxDepth(6))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Trie.Len() > 1)
	// Output:
	// true
}
