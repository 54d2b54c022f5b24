package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicsOnScenarioE(t *testing.T) {
	goal := puzzle.Spiral(3)
	b, err := puzzle.New(3, []int{5, 1, 0, 8, 4, 6, 3, 7, 2})
	require.NoError(t, err)

	assert.Equal(t, 7, heuristic.Hamming(b, goal))
	assert.GreaterOrEqual(t, heuristic.Manhattan(b, goal), 10)
	assert.GreaterOrEqual(t, heuristic.ManhattanLinearConflict(b, goal), heuristic.Manhattan(b, goal))
}

func TestHeuristicsZeroAtGoal(t *testing.T) {
	goal := puzzle.Spiral(4)
	assert.Equal(t, 0, heuristic.Hamming(goal, goal))
	assert.Equal(t, 0, heuristic.Manhattan(goal, goal))
	assert.Equal(t, 0, heuristic.ManhattanLinearConflict(goal, goal))
}

func TestLinearConflictDetectsSwappedPair(t *testing.T) {
	// Row 0 holds goal-row-0 tiles 2 and 1 swapped relative to goal order.
	goal, err := puzzle.New(3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)
	b, err := puzzle.New(3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0})
	require.NoError(t, err)

	assert.Equal(t, heuristic.Manhattan(b, goal)+1, heuristic.ManhattanLinearConflict(b, goal))
}

func TestHeuristicsNeverExceedOptimalLength(t *testing.T) {
	// A single slide away from goal: every admissible heuristic must
	// report at most 1.
	goal := puzzle.Spiral(3)
	for _, d := range puzzle.AllDirections {
		moved, ok := goal.Slide(d)
		if !ok {
			continue
		}
		assert.LessOrEqual(t, heuristic.Hamming(moved, goal), 1)
		assert.LessOrEqual(t, heuristic.Manhattan(moved, goal), 1)
		assert.LessOrEqual(t, heuristic.ManhattanLinearConflict(moved, goal), 1)
	}
}
