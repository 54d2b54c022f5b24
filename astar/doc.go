// Package astar implements A* search over the puzzle's configuration
// space: an open set ordered by ascending g+h, a closed set keyed by
// board identity, and decrease-key on reopening a board via a cheaper
// path.
//
// What: Search pops the open set's lowest-f board, goal-tests it
// before popping (the doc'd contract), expands its neighbours, and for
// each successor either pushes a new record, updates an existing
// open-set record in place, or reopens a closed one. Every expansion
// record lives in a single growing arena; predecessors are arena
// indices rather than owned back-pointers, collapsing path
// reconstruction to one backward index walk.
//
// Why: A* needs true decrease-key, not lazy duplicate-and-skip, because
// the open set is also the goal-test source on every peek — a stale
// duplicate sitting above the real minimum would corrupt the goal test,
// not just waste a pop. maxheap.Heap.UpdateValue gives that eager
// decrease-key directly; the price is that finding the existing record
// to update is a linear scan over the heap's Iter rather than an O(log n)
// indexed lookup, an accepted cost traded for not maintaining a second
// index structure alongside the heap.
//
// Complexity: O(b^d log n) where b is branching factor, d solution
// depth, n peak open-set size; each expansion does an O(n) scan for
// open-set membership.
//
// Options: WithInitialCapacity pre-sizes the open heap and closed map
// (default 65536, per the "pre-sized ≈65k entries" resource note).
//
// Errors: ErrUnreachable when the open set empties without reaching
// goal — expected only if the caller skipped the upstream solvability
// check (see solve.Solve). A board re-inserted into the closed set
// after its own expansion is a contract violation and panics.
package astar
