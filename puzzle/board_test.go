package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpiral(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{1, []int{0}},
		{3, []int{1, 2, 3, 8, 0, 4, 7, 6, 5}},
		{4, []int{1, 2, 3, 4, 12, 13, 14, 5, 11, 0, 15, 6, 10, 9, 8, 7}},
	}
	for _, tc := range cases {
		got := puzzle.Spiral(tc.n)
		assert.Equal(t, tc.want, got.Tiles(), "spiral(%d)", tc.n)
	}
}

func TestSpiral5BeginsWith(t *testing.T) {
	got := puzzle.Spiral(5).Tiles()
	want := []int{1, 2, 3, 4, 5, 16, 17, 18, 19, 6, 15, 24, 0, 20, 7}
	assert.Equal(t, want, got[:len(want)])
}

func TestSpiralIsSolvedAgainstItself(t *testing.T) {
	for n := 1; n <= 6; n++ {
		g := puzzle.Spiral(n)
		assert.True(t, g.IsSolved(puzzle.Spiral(n)), "n=%d", n)
	}
}

func TestSlideOppositeReturnsToOrigin(t *testing.T) {
	b := puzzle.Spiral(3)
	for _, d := range puzzle.AllDirections {
		moved, ok := b.Slide(d)
		if !ok {
			continue
		}
		back, ok := moved.Slide(d.Opposite())
		require.True(t, ok)
		assert.True(t, back.Equal(b), "slide(%v) then slide(%v) must return to origin", d, d.Opposite())
	}
}

func TestSlideSingleMove(t *testing.T) {
	goal := puzzle.Spiral(3)
	start, err := puzzle.New(3, []int{1, 2, 3, 8, 4, 0, 7, 6, 5})
	require.NoError(t, err)
	assert.False(t, start.IsSolved(goal))

	moved, ok := start.Slide(puzzle.Left)
	require.True(t, ok)
	assert.True(t, moved.IsSolved(goal))
}

func TestIsSolvable(t *testing.T) {
	goal := puzzle.Spiral(3)

	solvable, err := puzzle.New(3, []int{0, 8, 3, 1, 6, 4, 5, 7, 2})
	require.NoError(t, err)
	assert.True(t, solvable.IsSolvable(goal))

	unsolvable, err := puzzle.New(3, []int{1, 7, 8, 2, 0, 5, 3, 4, 6})
	require.NoError(t, err)
	assert.False(t, unsolvable.IsSolvable(goal))
}

func TestNewRejectsInvalidBoards(t *testing.T) {
	_, err := puzzle.New(0, []int{0})
	assert.ErrorIs(t, err, puzzle.ErrBadDimension)

	_, err = puzzle.New(3, []int{0, 1, 2})
	assert.ErrorIs(t, err, puzzle.ErrBadLength)

	_, err = puzzle.New(2, []int{0, 1, 1, 2})
	assert.ErrorIs(t, err, puzzle.ErrNotPermutation)
}

func TestNeighboursCorner(t *testing.T) {
	// blank at the spiral centre of a 3x3 has all four neighbours.
	b := puzzle.Spiral(3)
	assert.Len(t, b.Neighbours(), 4)

	// blank at (0,0) has only Right and Down.
	corner, err := puzzle.New(3, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Len(t, corner.Neighbours(), 2)
}

func TestSortedNeighboursStableOnTies(t *testing.T) {
	zeroH := func(_, _ puzzle.Board) int { return 0 }
	b := puzzle.Spiral(3)
	steps := b.SortedNeighbours(b, zeroH)
	// every candidate ties at cost 0, so the order must be exactly
	// the Right, Down, Left, Up base order restricted to legal moves.
	want := []puzzle.Direction{puzzle.Right, puzzle.Down, puzzle.Left, puzzle.Up}
	require.Len(t, steps, len(want))
	for i, s := range steps {
		assert.Equal(t, want[i], s.Dir)
	}
}

func TestHashAgreesWithEqual(t *testing.T) {
	a := puzzle.Spiral(4)
	b := puzzle.Spiral(4)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(b))
}
