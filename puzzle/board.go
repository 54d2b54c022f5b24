package puzzle

import (
	"fmt"
	"sort"
)

// Board is an immutable N×N sliding-puzzle configuration: Tiles is a
// length-N² row-major sequence (0 denotes the blank) and blank caches
// the index of that zero entry. Every operation that changes the
// configuration — Slide above all — returns a new Board; the receiver
// is never mutated.
type Board struct {
	n     int
	tiles []int
	blank int
}

// New validates tiles and wraps it into a Board. tiles must have length
// n*n and contain exactly one occurrence of every value in 0..n*n-1.
func New(n int, tiles []int) (Board, error) {
	if n < 1 {
		return Board{}, ErrBadDimension
	}
	if len(tiles) != n*n {
		return Board{}, ErrBadLength
	}
	seen := make([]bool, n*n)
	blank := -1
	for i, v := range tiles {
		if v < 0 || v >= n*n || seen[v] {
			return Board{}, ErrNotPermutation
		}
		seen[v] = true
		if v == 0 {
			blank = i
		}
	}
	own := make([]int, n*n)
	copy(own, tiles)

	return Board{n: n, tiles: own, blank: blank}, nil
}

// Spiral builds the canonical goal configuration for dimension n: tiles
// 1..n²-1 are laid clockwise on the perimeter, spiralling inward in the
// cycle Right, Down, Left, Up, turning whenever the next cell is out of
// bounds or already written; the blank lands on the final cell of that
// walk, the spiral's centre. For n=1 the single cell is the blank.
func Spiral(n int) Board {
	path := spiralPath(n)
	tiles := make([]int, n*n)
	blank := 0
	for k, idx := range path {
		v := (k + 1) % (n * n)
		tiles[idx] = v
		if v == 0 {
			blank = idx
		}
	}

	return Board{n: n, tiles: tiles, blank: blank}
}

// spiralPath returns the n² cell indices (row*n+col) in clockwise
// spiral visitation order, starting at the top-left corner.
func spiralPath(n int) []int {
	path := make([]int, 0, n*n)
	written := make([]bool, n*n)
	row, col := 0, 0
	turn := 0
	for len(path) < n*n {
		idx := row*n + col
		path = append(path, idx)
		written[idx] = true
		if len(path) == n*n {
			break
		}
		d := spiralTurnOrder[turn]
		nr, nc := row+deltas[d].dr, col+deltas[d].dc
		if nr < 0 || nr >= n || nc < 0 || nc >= n || written[nr*n+nc] {
			turn = (turn + 1) % numDirections
			d = spiralTurnOrder[turn]
			nr, nc = row+deltas[d].dr, col+deltas[d].dc
		}
		row, col = nr, nc
	}

	return path
}

// N returns the board dimension.
func (b Board) N() int { return b.n }

// Tiles returns a defensive copy of the row-major tile sequence.
func (b Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// BlankIndex returns the row-major index of the blank cell.
func (b Board) BlankIndex() int { return b.blank }

// Equal reports whether b and other hold the same dimension and tile
// sequence. This is the only notion of Board equality used throughout
// the search drivers' open/closed sets.
func (b Board) Equal(other Board) bool {
	if b.n != other.n || len(b.tiles) != len(other.tiles) {
		return false
	}
	for i, v := range b.tiles {
		if other.tiles[i] != v {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit FNV-1a digest of the tile sequence, suitable as
// a map key for closed sets and the pruning builder's visited set.
func (b Board) Hash() uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, v := range b.tiles {
		h ^= uint64(uint32(v))
		h *= prime
	}
	return h
}

// rowCol decomposes a row-major index into (row, col) for this board's
// dimension.
func (b Board) rowCol(idx int) (int, int) { return idx / b.n, idx % b.n }

// Slide exchanges the blank with its d-neighbour, returning the result
// and true; if the blank has no neighbour in direction d (it sits on
// the corresponding edge) it returns the zero Board and false.
func (b Board) Slide(d Direction) (Board, bool) {
	row, col := b.rowCol(b.blank)
	dl := deltas[d]
	nr, nc := row+dl.dr, col+dl.dc
	if nr < 0 || nr >= b.n || nc < 0 || nc >= b.n {
		return Board{}, false
	}
	newBlank := nr*b.n + nc
	tiles := make([]int, len(b.tiles))
	copy(tiles, b.tiles)
	tiles[b.blank], tiles[newBlank] = tiles[newBlank], tiles[b.blank]

	return Board{n: b.n, tiles: tiles, blank: newBlank}, true
}

// Neighbours returns every direction whose Slide is defined, each with
// unit step cost, in canonical Right, Up, Down, Left order.
func (b Board) Neighbours() []Step {
	out := make([]Step, 0, numDirections)
	for _, d := range AllDirections {
		if _, ok := b.Slide(d); ok {
			out = append(out, Step{Dir: d, Cost: 1})
		}
	}
	return out
}

// SortedNeighbours returns the same set as Neighbours, ascending by
// h(slide result, goal). The sort is stable over the base order Right,
// Down, Left, Up, so tied candidates keep that relative order.
func (b Board) SortedNeighbours(goal Board, h Heuristic) []Step {
	type cand struct {
		step Step
		cost int
	}
	cands := make([]cand, 0, numDirections)
	for _, d := range spiralTurnOrder {
		next, ok := b.Slide(d)
		if !ok {
			continue
		}
		cands = append(cands, cand{step: Step{Dir: d, Cost: 1}, cost: h(next, goal)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].cost < cands[j].cost })

	out := make([]Step, len(cands))
	for i, c := range cands {
		out[i] = c.step
	}
	return out
}

// IsSolved reports whether b is tile-identical to goal.
func (b Board) IsSolved(goal Board) bool { return b.Equal(goal) }

// IsSolvable reports whether b can reach goal by any sequence of
// slides. The classical parity argument generalises to an arbitrary
// target permutation: letting T be the number of transpositions needed
// to sort b's tiles into goal's order (via straight selection sort) and
// M the Manhattan distance between the two blank cells, b is solvable
// iff T+M is even.
func (b Board) IsSolvable(goal Board) bool {
	working := make([]int, len(b.tiles))
	copy(working, b.tiles)

	transpositions := 0
	for i := range working {
		target := goal.tiles[i]
		if working[i] == target {
			continue
		}
		j := i + 1
		for working[j] != target {
			j++
		}
		working[i], working[j] = working[j], working[i]
		transpositions++
	}

	br, bc := b.rowCol(b.blank)
	gr, gc := goal.rowCol(goal.blank)
	manhattan := abs(br-gr) + abs(bc-gc)

	return (transpositions+manhattan)%2 == 0
}

// BlankCenteringMoves returns the Manhattan distance the blank alone
// would need to travel, ignoring every other tile, to reach goal's
// blank cell. It is the same quantity IsSolvable folds into its parity
// check, exposed independently as a cheap diagnostic for callers that
// want a lower bound without running the full parity computation.
func (b Board) BlankCenteringMoves(goal Board) int {
	br, bc := b.rowCol(b.blank)
	gr, gc := goal.rowCol(goal.blank)
	return abs(br-gr) + abs(bc-gc)
}

// String renders the board as N rows of whitespace-separated tiles,
// the blank printed as '.'. Used by test failure messages, not a
// visualiser.
func (b Board) String() string {
	out := make([]byte, 0, b.n*(b.n*4))
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			v := b.tiles[r*b.n+c]
			if c > 0 {
				out = append(out, ' ')
			}
			if v == 0 {
				out = append(out, '.')
			} else {
				out = append(out, []byte(fmt.Sprintf("%d", v))...)
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
