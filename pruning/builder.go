package pruning

import (
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/trie"
)

// frontierItem pairs a board with the move path that reached it from
// the oversized spiral seed.
type frontierItem struct {
	board puzzle.Board
	path  []puzzle.Direction
}

// walker encapsulates the mutable BFS state: a FIFO queue, a visited
// set, and the accumulating result.
type walker struct {
	opts    Options
	queue   []frontierItem
	visited map[uint64]bool
	res     *Result
}

// Build constructs the pruning automaton for an N×N puzzle: a strict
// FIFO breadth-first enumeration of move strings from spiral(2N-1),
// up to the configured depth, feeding every re-seen board's path into
// the Trie as a redundant word.
func Build(n int, opts ...Option) (*Result, error) {
	if n < 1 {
		return nil, ErrBadDimension
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := puzzle.Spiral(2*n - 1)
	w := &walker{
		opts:    o,
		queue:   make([]frontierItem, 0, o.InitialCapacity),
		visited: make(map[uint64]bool, o.InitialCapacity),
		res:     &Result{Trie: trie.New()},
	}
	w.visited[start.Hash()] = true
	w.enqueue(start, nil)
	w.loop()
	w.res.Trie.UpdateFailure()

	return w.res, nil
}

func (w *walker) enqueue(board puzzle.Board, path []puzzle.Direction) {
	w.queue = append(w.queue, frontierItem{board: board, path: path})
}

func (w *walker) dequeue() frontierItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// loop drains the frontier, expanding each item whose path is shorter
// than MaxDepth in the fixed Right, Up, Down, Left order.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if len(item.path) >= w.opts.MaxDepth {
			continue
		}
		w.expand(item)
	}
}

func (w *walker) expand(item frontierItem) {
	for _, d := range puzzle.AllDirections {
		next, ok := item.board.Slide(d)
		if !ok {
			continue
		}
		path := make([]puzzle.Direction, len(item.path)+1)
		copy(path, item.path)
		path[len(item.path)] = d

		if w.visited[next.Hash()] {
			w.res.Redundant = append(w.res.Redundant, path)
			w.res.Trie.AddWord(path)
			continue
		}
		w.visited[next.Hash()] = true
		w.res.Primitive = append(w.res.Primitive, path)
		w.enqueue(next, path)
	}
}
