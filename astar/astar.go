package astar

import (
	"github.com/katalvlaran/npuzzle/maxheap"
	"github.com/katalvlaran/npuzzle/puzzle"
)

// runner holds one Search call's mutable state: the board arena, the
// open-set heap of arena indices, and the closed set keyed by board
// hash.
type runner struct {
	goal   puzzle.Board
	h      puzzle.Heuristic
	arena  []node
	open   *maxheap.Heap[heapItem]
	closed map[uint64]int
	cx     puzzle.Complexity
}

// Search runs A* from start to goal under heuristic h, returning the
// start-first optimal path. Callers are expected to have already
// confirmed the instance is solvable (see solve.Solve); given an
// unreachable goal, Search exhausts its open set and returns
// ErrUnreachable.
func Search(start, goal puzzle.Board, h puzzle.Heuristic, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	r := &runner{
		goal:   goal,
		h:      h,
		arena:  make([]node, 0, o.InitialCapacity),
		open:   maxheap.NewWithCapacity[heapItem](o.InitialCapacity, heapLess, heapEqual),
		closed: make(map[uint64]int, o.InitialCapacity),
	}

	startIdx := r.alloc(node{board: start, g: 0, h: h(start, goal), predIndex: -1})
	r.open.Push(heapItem{index: startIdx, f: r.arena[startIdx].f()})

	for {
		item, ok := r.open.Peek()
		if !ok {
			return Result{}, ErrUnreachable
		}
		root := r.arena[item.index]
		if root.board.IsSolved(r.goal) {
			r.open.Pop()
			return Result{
				Path:       r.reconstruct(item.index),
				Complexity: r.cx,
			}, nil
		}
		r.open.Pop()
		r.cx.InTime++
		r.expand(item.index, root)

		if _, already := r.closed[root.board.Hash()]; already {
			panic("astar: board already present in closed set")
		}
		r.closed[root.board.Hash()] = item.index
	}
}

func (r *runner) alloc(n node) int {
	r.arena = append(r.arena, n)
	idx := len(r.arena) - 1
	if idx+1 > r.cx.InSize {
		r.cx.InSize = idx + 1
	}
	return idx
}

// expand relaxes every neighbour of the board at rootIdx, pushing new
// open-set records, updating cheaper ones in place, or reopening a
// closed board that was reached more cheaply.
func (r *runner) expand(rootIdx int, root node) {
	for _, step := range root.board.Neighbours() {
		next, ok := root.board.Slide(step.Dir)
		if !ok {
			continue
		}
		g := root.g + step.Cost

		if closedIdx, inClosed := r.closed[next.Hash()]; inClosed {
			if g >= r.arena[closedIdx].g {
				continue
			}
			delete(r.closed, next.Hash())
			r.arena[closedIdx].g = g
			r.arena[closedIdx].dir = step.Dir
			r.arena[closedIdx].predIndex = rootIdx
			r.open.Push(heapItem{index: closedIdx, f: r.arena[closedIdx].f()})
			continue
		}

		if openIdx, inOpen := r.findOpen(next); inOpen {
			if g >= r.arena[openIdx].g {
				continue
			}
			r.arena[openIdx].g = g
			r.arena[openIdx].dir = step.Dir
			r.arena[openIdx].predIndex = rootIdx
			r.open.UpdateValue(heapItem{index: openIdx, f: r.arena[openIdx].f()})
			continue
		}

		idx := r.alloc(node{
			board:     next,
			g:         g,
			h:         r.h(next, r.goal),
			dir:       step.Dir,
			predIndex: rootIdx,
		})
		r.open.Push(heapItem{index: idx, f: r.arena[idx].f()})
	}
}

// findOpen scans the open heap for an existing record of board,
// implementing the baseline O(n) open-set membership test.
func (r *runner) findOpen(board puzzle.Board) (int, bool) {
	for _, item := range r.open.Iter() {
		if r.arena[item.index].board.Equal(board) {
			return item.index, true
		}
	}
	return 0, false
}

// reconstruct walks the predecessor chain from goalIdx back to the
// start (predIndex -1) and returns it reversed, start-first.
func (r *runner) reconstruct(goalIdx int) []puzzle.Board {
	var reversed []puzzle.Board
	for idx := goalIdx; idx != -1; idx = r.arena[idx].predIndex {
		reversed = append(reversed, r.arena[idx].board)
	}
	path := make([]puzzle.Board, len(reversed))
	for i, b := range reversed {
		path[len(reversed)-1-i] = b
	}
	return path
}
