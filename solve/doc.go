// Package solve is the unified dispatcher over the three search
// drivers: it validates the instance once, routes to the requested
// algorithm, and normalises each driver's result into one shared
// shape.
//
// What: Solve runs the puzzle's parity-based solvability check before
// ever invoking a driver, declining with ErrUnsolvable rather than
// letting Astar/IDAstar loop on an instance with no path to goal, then
// switches on opts.Algo to call astar.Search, idastar.Search (building
// a fresh pruning automaton via the pruning package when the caller
// did not supply one), or greedy.Search.
//
// Why: a single validation stage ahead of the switch means every driver
// can assume a solvable instance and skip re-deriving that check itself;
// routing through an Algorithm enum rather than three exported entry
// points keeps the unsolvable-instance guard and automaton-build-on-
// demand logic in one place instead of duplicated across callers.
//
// Options: Algo selects the driver; Heuristic is required for Astar
// and IDAstar (ignored by Greedy); Automaton supplies a prebuilt
// *trie.Trie for IDAstar (if nil, Solve builds one via pruning.Build
// using PruningDepth); PruningDepth configures that on-demand build.
//
// Errors: ErrUnsolvable (pre-search parity check), ErrUnsupportedAlgorithm
// (unknown Algo value), plus whatever the chosen driver itself returns.
package solve
