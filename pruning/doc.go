// Package pruning builds the move-redundancy pruning automaton offline,
// once per (dimension, depth) pair, via a breadth-first enumeration of
// short move strings starting from an oversized spiral goal.
//
// What: Build seeds a FIFO frontier with spiral(2N-1) (a larger board
// so that move sequences up to the configured depth never run off the
// representable grid), then expands each frontier board in the fixed
// direction order Right, Up, Down, Left up to the configured depth.
// A successor board seen for the first time is primitive and gets
// enqueued; a successor seen before is redundant and its path is fed
// into trie.Trie.AddWord. Once the frontier is exhausted, UpdateFailure
// completes the automaton.
//
// Why this shape: breadth-first order guarantees that the first time
// a board is reached is via a shortest move sequence, which is exactly
// the property a redundancy-pruning automaton needs — any later path
// to the same board is provably no shorter, so it is safe to mark
// redundant rather than explore further. A plain FIFO slice of
// (board, path) pairs plus a hash-keyed visited set is the simplest
// structure that gives that guarantee.
//
// Complexity: O(4^D) frontier expansions in the worst case (D the
// configured depth), bounded in practice by the number of distinct
// reachable boards within that depth.
//
// Options: WithMaxDepth (default 10) and WithInitialCapacity (default
// 65536, matching the pre-sized frontier/closed-set convention used
// throughout the search drivers).
//
// Errors: ErrBadDimension for N < 1; ErrOptionViolation for a negative
// MaxDepth or non-positive InitialCapacity.
package pruning
