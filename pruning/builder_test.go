package pruning_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/pruning"
	"github.com/katalvlaran/npuzzle/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoundTripsPrimitiveAndRedundant(t *testing.T) {
	res, err := pruning.Build(3, pruning.WithMaxDepth(7))
	require.NoError(t, err)
	require.NotEmpty(t, res.Redundant, "depth 7 on a 3-puzzle should produce some redundant paths")

	for _, p := range res.Redundant {
		assert.Equal(t, trie.KindRedundant, res.Trie.MatchWord(p).Kind, "redundant path %v should match Redundant", p)
	}
	for _, p := range res.Primitive {
		assert.NotEqual(t, trie.KindRedundant, res.Trie.MatchWord(p).Kind, "primitive path %v should not match Redundant", p)
	}
}

func TestBuildRejectsBadDimension(t *testing.T) {
	_, err := pruning.Build(0)
	assert.ErrorIs(t, err, pruning.ErrBadDimension)
}

func TestWithMaxDepthRejectsNegative(t *testing.T) {
	_, err := pruning.Build(3, pruning.WithMaxDepth(-1))
	assert.ErrorIs(t, err, pruning.ErrOptionViolation)
}
