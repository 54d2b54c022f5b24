// Package trie implements the move-redundancy pruning automaton: a
// flat, Aho-Corasick-style automaton over the four-letter Direction
// alphabet that recognises canonical duplicate move sequences so
// idastar can cut them off during depth-first expansion.
//
// What: a Trie is a slice of Nodes, each a length-4 transition table
// indexed by puzzle.Direction. A transition is one of Redundant (the
// path is a certain canonical duplicate — prune it), Match(i) (the
// path is a literal prefix of an inserted word, continue at node i),
// or Failure(i) (the path is not a prefix of anything inserted, but
// its longest proper suffix that is lands at node i).
//
// Why a suffix automaton and not a plain trie: a plain trie only
// matches patterns anchored at the start of the move sequence; the
// pruning target is "this suffix of the current path is redundant
// regardless of how we got here", which is exactly the Aho-Corasick
// failure-link construction restricted to a 4-letter alphabet.
//
// Complexity: AddWord is O(len(word)²), since its redundancy check
// walks every suffix of the word; UpdateFailure is a single pass over
// every node, running that same suffix walk per edge, O(total nodes ×
// len(longest word)²); MatchWord/MatchWordNoFailure are O(len(word)).
//
// Options: none.
//
// Errors: none at the type level; AddWord reports success via a bool
// return (false when the word is already pruned by a previously added
// word). A word that is a proper prefix of a previously added word
// turns its final edge Redundant, cutting off the longer word's tail.
// CheckIntegrity panics if a node has become an all-Redundant dead
// state, the one construction bug treated as a programmer error.
package trie
