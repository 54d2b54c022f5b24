package pruning

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/puzzle"
	"github.com/katalvlaran/npuzzle/trie"
)

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds Build's tunable parameters.
type Options struct {
	// MaxDepth caps the BFS frontier expansion depth D; larger values
	// prune more at construction-time cost. Typical values are
	// 10..14 for N=3..4.
	MaxDepth int

	// InitialCapacity pre-sizes the frontier and visited set.
	InitialCapacity int

	err error
}

// DefaultOptions returns MaxDepth=10, InitialCapacity=65536.
func DefaultOptions() Options {
	return Options{MaxDepth: 10, InitialCapacity: 1 << 16}
}

// WithMaxDepth sets the construction depth D.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithInitialCapacity sets the frontier/visited-set pre-sizing.
func WithInitialCapacity(c int) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: InitialCapacity must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.InitialCapacity = c
	}
}

// Result is Build's output: the completed Trie plus the primitive and
// redundant path lists the test oracle (§8) checks against.
type Result struct {
	Trie      *trie.Trie
	Primitive [][]puzzle.Direction
	Redundant [][]puzzle.Direction
}
