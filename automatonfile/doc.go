// Package automatonfile is the binary round-trip codec for a
// pruning.Build trie: a length-prefixed sequence of fixed-size nodes,
// written and read with encoding/binary.
//
// What: Encode writes a uint32 node count followed by, per node, four
// tagged transitions (one per puzzle.Direction) each encoded as a
// one-byte Kind followed by an int64 Next index. Decode reverses this
// exactly, handing the reconstructed table to trie.FromNodes.
//
// Why: a pruning automaton is expensive to build and cheap to replay —
// Encode/Decode let a build-time run of pruning.Build be persisted once
// and reloaded on every later process start instead of rebuilt. The
// codec takes a plain io.Writer/io.Reader rather than a file path so it
// carries no opinion about where the bytes live; this is the module's
// only I/O surface, deliberately narrow.
//
// Complexity: O(nodes) time and space, both directions.
//
// Options: none.
//
// Errors: Decode returns ErrTruncated if the stream ends before a
// complete node count or node table has been read, and ErrCorrupt if a
// Kind byte falls outside the three declared values.
package automatonfile
