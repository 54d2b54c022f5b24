package pruning

import "github.com/katalvlaran/npuzzle/puzzle"

// Excursion tracks, over a move sequence, the running net displacement
// along the right/left and up/down axes and the largest magnitude each
// direction has ever reached. It is a cheap signature of "how far this
// prefix has wandered" — advisory only, never consulted by Build's own
// redundancy decision, which always defers to the exact Board hash.
type Excursion struct {
	MaxInDir      [4]int
	currRightLeft int
	currUpDown    int
}

// Update folds one more move into the excursion signature.
func (e *Excursion) Update(d puzzle.Direction) {
	switch d {
	case puzzle.Right:
		e.currRightLeft++
	case puzzle.Left:
		e.currRightLeft--
	case puzzle.Up:
		e.currUpDown++
	case puzzle.Down:
		e.currUpDown--
	}
	e.updateMax()
}

func (e *Excursion) updateMax() {
	switch {
	case e.currRightLeft > 0 && e.currRightLeft > e.MaxInDir[puzzle.Right]:
		e.MaxInDir[puzzle.Right] = e.currRightLeft
	case e.currRightLeft < 0 && -e.currRightLeft > e.MaxInDir[puzzle.Left]:
		e.MaxInDir[puzzle.Left] = -e.currRightLeft
	case e.currUpDown > 0 && e.currUpDown > e.MaxInDir[puzzle.Up]:
		e.MaxInDir[puzzle.Up] = e.currUpDown
	case e.currUpDown < 0 && -e.currUpDown > e.MaxInDir[puzzle.Down]:
		e.MaxInDir[puzzle.Down] = -e.currUpDown
	}
}
