package heuristic

import "github.com/katalvlaran/npuzzle/puzzle"

// Hamming counts the non-blank tiles whose current cell differs from
// their goal cell. Admissible: each misplaced tile needs at least one
// move to reach its goal cell.
func Hamming(board, goal puzzle.Board) int {
	bt, gt := board.Tiles(), goal.Tiles()
	count := 0
	for i, v := range bt {
		if v != 0 && v != gt[i] {
			count++
		}
	}
	return count
}

// Manhattan sums, over every non-blank tile, the grid distance between
// its current cell and its goal cell. Admissible: a tile can move at
// most one grid step per puzzle move, so it needs at least its
// Manhattan distance worth of moves (shared with other tiles' moves,
// but never fewer).
func Manhattan(board, goal puzzle.Board) int {
	n := board.N()
	goalPos := valueToIndex(goal.Tiles())
	sum := 0
	for idx, v := range board.Tiles() {
		if v == 0 {
			continue
		}
		sum += cellDistance(idx, goalPos[v], n)
	}
	return sum
}

// ManhattanLinearConflict refines Manhattan with one extra unit per
// linear conflict: two non-blank tiles share a row (or column) of the
// board, both belong in that same row (or column) in goal, but appear
// in reversed relative order. Resolving a conflict requires one tile
// to step out of the line and back, costing at least two extra moves
// beyond the Manhattan estimate — only one of those two is charged
// here, so admissibility is preserved; each qualifying pair is counted
// exactly once, on whichever single axis (row or column) it aligns on.
func ManhattanLinearConflict(board, goal puzzle.Board) int {
	n := board.N()
	bt := board.Tiles()
	goalPos := valueToIndex(goal.Tiles())
	conflicts := 0

	// Row conflicts: for each board row, the non-blank tiles whose
	// goal row is that same row, in current left-to-right order.
	for r := 0; r < n; r++ {
		var goalCols []int
		for c := 0; c < n; c++ {
			v := bt[r*n+c]
			if v == 0 {
				continue
			}
			gi := goalPos[v]
			if gi/n == r {
				goalCols = append(goalCols, gi%n)
			}
		}
		conflicts += countInversions(goalCols)
	}

	// Column conflicts: symmetric, scanning top-to-bottom.
	for c := 0; c < n; c++ {
		var goalRows []int
		for r := 0; r < n; r++ {
			v := bt[r*n+c]
			if v == 0 {
				continue
			}
			gi := goalPos[v]
			if gi%n == c {
				goalRows = append(goalRows, gi/n)
			}
		}
		conflicts += countInversions(goalRows)
	}

	return Manhattan(board, goal) + conflicts
}

// countInversions counts pairs (i,j), i<j, with seq[i] > seq[j] — the
// number of same-axis tiles whose goal order contradicts their current
// order.
func countInversions(seq []int) int {
	count := 0
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				count++
			}
		}
	}
	return count
}

// valueToIndex inverts a tile sequence into a value -> row-major-index
// lookup table.
func valueToIndex(tiles []int) []int {
	pos := make([]int, len(tiles))
	for idx, v := range tiles {
		pos[v] = idx
	}
	return pos
}

// cellDistance returns the Manhattan distance between two row-major
// indices in an n-wide grid.
func cellDistance(a, b, n int) int {
	ar, ac := a/n, a%n
	br, bc := b/n, b%n
	return absInt(ar-br) + absInt(ac-bc)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
