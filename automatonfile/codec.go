package automatonfile

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/katalvlaran/npuzzle/trie"
)

// Encode writes t to w as a uint32 node count followed by, for each
// node, four (Kind byte, Next int64) pairs in puzzle.Direction order.
func Encode(w io.Writer, t *trie.Trie) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(t.Len())); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		node := t.NodeAt(i)
		for _, tr := range node {
			if err := binary.Write(w, binary.LittleEndian, byte(tr.Kind)); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, int64(tr.Next)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Decode reads a stream written by Encode and reconstructs the Trie
// verbatim.
func Decode(r io.Reader) (*trie.Trie, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, wrapReadErr(err)
	}

	nodes := make([]trie.Node, count)
	for i := range nodes {
		for d := 0; d < len(nodes[i]); d++ {
			var kindByte byte
			if err := binary.Read(r, binary.LittleEndian, &kindByte); err != nil {
				return nil, wrapReadErr(err)
			}
			if kindByte > byte(trie.KindRedundant) {
				return nil, ErrCorrupt
			}
			var next int64
			if err := binary.Read(r, binary.LittleEndian, &next); err != nil {
				return nil, wrapReadErr(err)
			}
			nodes[i][d] = trie.Transition{Kind: trie.Kind(kindByte), Next: int(next)}
		}
	}

	return trie.FromNodes(nodes), nil
}

func wrapReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
