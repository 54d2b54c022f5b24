// Package npuzzle (github.com/katalvlaran/npuzzle) is a search engine
// for the N×N sliding-tile puzzle with a clockwise-spiral goal centred
// on the board's middle cell.
//
// The module is organized one concern per package, leaves first:
//
//	puzzle/        — Board, Direction, spiral goal, slide, solvability, file parser
//	heuristic/     — Hamming, Manhattan, Manhattan+LinearConflict
//	maxheap/       — generic decrease-key binary max-heap
//	trie/          — Aho-Corasick-style move-redundancy pruning automaton
//	pruning/       — offline BFS builder for the pruning automaton
//	astar/         — A* search driven by the max-heap
//	idastar/       — IDA*, threshold-deepening, pruned by the automaton
//	greedy/        — single-pass depth-first hill-climb (non-optimal)
//	solve/         — unified dispatcher across the three search drivers
//	automatonfile/ — binary round-trip codec for a built automaton
//
// None of these packages does its own I/O beyond automatonfile's
// explicit Encode/Decode over an io.Writer/io.Reader; there is no
// logger, no configuration file, and no network or storage dependency
// anywhere in the module. Search drivers are pure functions: board in,
// (path, complexity) or error out.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
