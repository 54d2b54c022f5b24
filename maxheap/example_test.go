package maxheap_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/maxheap"
)

func ExampleHeap_Push() {
	h := maxheap.New[int](func(a, b int) bool { return a < b }, func(a, b int) bool { return a == b })
	h.Push(2)
	h.Push(9)
	h.Push(5)
	top, _ := h.Peek()
	fmt.Println(top)
	// Output:
	// 9
}
