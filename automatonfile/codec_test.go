package automatonfile_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/npuzzle/automatonfile"
	"github.com/katalvlaran/npuzzle/pruning"
	"github.com/katalvlaran/npuzzle/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrips(t *testing.T) {
	res, err := pruning.Build(3, pruning.WithMaxDepth(6))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, automatonfile.Encode(&buf, res.Trie))

	decoded, err := automatonfile.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, res.Trie.Len(), decoded.Len())

	for i := 0; i < res.Trie.Len(); i++ {
		assert.Equal(t, res.Trie.NodeAt(i), decoded.NodeAt(i))
	}

	for _, p := range res.Redundant {
		assert.Equal(t, res.Trie.MatchWord(p), decoded.MatchWord(p))
	}
}

func TestDecodeTruncatedHeaderReturnsErrTruncated(t *testing.T) {
	_, err := automatonfile.Decode(bytes.NewReader([]byte{0x01, 0x00}))
	assert.ErrorIs(t, err, automatonfile.ErrTruncated)
}

func TestDecodeCorruptKindReturnsErrCorrupt(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{1, 0, 0, 0}) // node count = 1
	buf.WriteByte(0xFF)           // invalid Kind for the first transition
	_, err := automatonfile.Decode(&buf)
	assert.ErrorIs(t, err, automatonfile.ErrCorrupt)
}

func TestDecodeEmptyStreamReturnsErrTruncated(t *testing.T) {
	_, err := automatonfile.Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, automatonfile.ErrTruncated)
}

func TestEncodeTrivialTrie(t *testing.T) {
	empty := trie.New()

	var buf bytes.Buffer
	require.NoError(t, automatonfile.Encode(&buf, empty))

	decoded, err := automatonfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, decoded.Len())
}

