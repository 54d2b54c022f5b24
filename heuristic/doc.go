// Package heuristic provides admissible distance estimates between a
// board and a goal configuration, for consumption by astar, idastar
// and greedy.
//
// What: Hamming counts misplaced non-blank tiles; Manhattan sums their
// grid-distance to their goal cell; ManhattanLinearConflict adds one
// unit per same-axis conflicting pair on top of Manhattan.
//
// Why: A* and IDA* optimality depends on the heuristic never
// overestimating true remaining cost. Each function here carries that
// proof in its doc comment rather than in a runtime assertion — there
// is nothing to check at runtime, only at design time.
//
// Complexity: Hamming and Manhattan are O(N²); ManhattanLinearConflict
// is O(N³) (O(N²) pairs compared per row/column).
//
// Options: none; each function takes (board, goal puzzle.Board) and
// returns a non-negative int, matching puzzle.Heuristic exactly.
//
// Errors: none; heuristics are total functions over well-formed boards.
package heuristic
