// Package greedy implements a single-pass depth-first hill-climb over
// the puzzle's configuration space: from the current board, take the
// first unvisited successor; backtrack by popping a path stack when
// none remains.
//
// What: Search walks forward greedily, recording every board it
// visits on a stack as it commits to it, and a visited set to avoid
// revisiting. On a dead end (every successor already visited) it pops
// the stack and resumes from the board beneath. No heuristic ordering
// or optimality guarantee is made — this is the fast, approximate
// sibling of astar and idastar, the specification's explicitly
// non-optimal "returns some solution" driver.
//
// Why: the specification names this driver without an accompanying
// original-source file or pack example (no reviewed repo implements
// hill-climbing search); its shape is authored directly from the
// specification's prose in the idiom established by astar and
// idastar — a pure function over puzzle.Board plus a visited set keyed
// by Board.Hash, the same closed-set convention astar uses (idastar
// keeps no visited set).
//
// Complexity: O(longest attempted walk) time, O(visited boards) space;
// no heap, no automaton.
//
// Options: none.
//
// Errors: ErrUnreachable when the path stack empties before the goal
// is reached — the specification's documented failure mode, expected
// only if the caller skipped the upstream solvability check.
package greedy
