// Package idastar implements IDA*: iterative deepening on the f-cost
// bound, with the move-redundancy pruning automaton threaded through
// the recursion as an extra piece of state alongside the board and
// path cost.
//
// What: Search repeatedly runs a bounded depth-first recursion under
// a threshold τ (starting at h(start)), raising τ to the smallest
// f-cost seen beyond the prior threshold each time the bound is
// exhausted without success, until a goal board is found. Each
// recursive call carries the current Trie state; a transition into
// Redundant prunes that branch without exploring it, since Redundant
// means a shorter equivalent move sequence already reaches the same
// board.
//
// Why: bounding expansion by a threshold rather than a priority queue
// keeps memory at O(depth) instead of A*'s O(frontier size), at the
// cost of re-exploring shallower nodes on every threshold increase.
// The path is built by appending each ancestor as the recursion
// unwinds from the goal back to the root — the natural order for a
// call stack that only knows it is on the solution path once the
// bottom has already returned Found — and reversed once at the public
// boundary so every driver in this module returns the same
// start-first convention.
//
// Complexity: re-explores the search tree from the root on every
// threshold increase, but since the threshold only rises to values
// actually observed, the total work stays within a constant factor of
// a single A* expansion in practice. in_size tracks peak recursion
// depth rather than A*'s frontier size.
//
// Options: none; the automaton (a *trie.Trie) and heuristic are
// required arguments, not tunables.
//
// Errors: ErrUnreachable when a DFS pass returns no finite bound
// beyond τ (next_τ == 0) without having found the goal — meaning no
// branch anywhere extended past the current horizon, so raising τ
// further cannot help.
package idastar
