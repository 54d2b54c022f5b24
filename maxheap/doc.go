// Package maxheap implements a binary max-heap over a contiguous
// resizable slice, with a decrease-key style UpdateValue and a
// scoped PeekMut handle, generalised over any element type through
// caller-supplied ordering and equality functions.
//
// What: Push sifts up; Pop swaps root and tail, shrinks, sifts down;
// PeekMut hands back a handle to the root that re-sifts on Release
// unless the caller consumed it via PopPeek; UpdateValue scans for the
// first element equal to x, overwrites it, then sifts that index to
// the bottom of its subtree before sifting it back up — correct
// whether x's priority rose or fell.
//
// Why: a caller needing decrease-key on an arbitrary element (not just
// "the current minimum") has two options: maintain a secondary index
// mapping element identity to heap position, or scan. UpdateValue takes
// the scan — O(n) but correct by construction and with no second data
// structure to keep in sync with the heap's own swaps — and restores
// order with sift-to-bottom-then-sift-up rather than a single
// conditional sift, since the overwritten element's new priority may
// have moved in either direction relative to its old one.
//
// Complexity: Push/Pop O(log n); UpdateValue O(n) for the scan plus
// O(log n) for the resift; Peek/PeekMut O(1).
//
// Options: none — Heap[T] takes a less(a, b T) bool comparator and an
// equal(a, b T) bool predicate at construction and has no other knobs.
//
// Errors: none; Pop and PeekMut report emptiness via a boolean ok
// return rather than a panic or sentinel error, so callers that have
// already checked Len() pay no error-handling tax.
package maxheap
