package pruning_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/pruning"
	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestExcursionTracksNetDisplacement(t *testing.T) {
	var e pruning.Excursion
	for _, d := range []puzzle.Direction{puzzle.Up, puzzle.Right, puzzle.Right, puzzle.Up, puzzle.Left, puzzle.Left, puzzle.Left, puzzle.Up, puzzle.Down} {
		e.Update(d)
	}
	assert.Equal(t, 2, e.MaxInDir[puzzle.Right])
	assert.Equal(t, 1, e.MaxInDir[puzzle.Left])
	assert.Equal(t, 3, e.MaxInDir[puzzle.Up])
	assert.Equal(t, 0, e.MaxInDir[puzzle.Down])
}
