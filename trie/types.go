package trie

import "github.com/katalvlaran/npuzzle/puzzle"

// Kind discriminates a Transition's tag. Go has no sum types, so
// Transition pairs a Kind with a Next index that is meaningful only
// for Match and Failure.
type Kind int

const (
	KindFailure Kind = iota
	KindMatch
	KindRedundant
)

func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "Failure"
	case KindMatch:
		return "Match"
	case KindRedundant:
		return "Redundant"
	default:
		return "Kind(?)"
	}
}

// Transition is one TrieType entry: Redundant carries no payload;
// Match and Failure carry the destination node index in Next.
type Transition struct {
	Kind Kind
	Next int
}

// Redundant is the absorbing, terminal transition: once reached, no
// further Direction can move the automaton out of it.
var Redundant = Transition{Kind: KindRedundant}

// Failure constructs a Failure(i) transition.
func Failure(i int) Transition { return Transition{Kind: KindFailure, Next: i} }

// Match constructs a Match(i) transition.
func Match(i int) Transition { return Transition{Kind: KindMatch, Next: i} }

// Node is a length-4 transition table indexed by puzzle.Direction.
type Node [4]Transition

// rootNode is every new Trie's node 0: a Failure(0) loop on every
// direction, meaning "nothing to prune yet".
func rootNode() Node {
	return Node{
		puzzle.Right: Failure(0),
		puzzle.Up:    Failure(0),
		puzzle.Down:  Failure(0),
		puzzle.Left:  Failure(0),
	}
}
