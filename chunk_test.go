package splithash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsChunkedNode[X comparable](n Node[X]) bool {
	if n == nil {
		return false
	}
	if _, ok := n.(*ChunkedNode[X]); ok {
		return true
	}
	for _, part := range n.SplitParts() {
		if containsChunkedNode[X](part) {
			return true
		}
	}
	return false
}

func TestChunkPreservesHashAndSize(t *testing.T) {
	const n = 4000
	tree := BuildBlock[int32](leaves(n))
	chunked := Chunk[int32](tree)

	assert.Equal(t, tree.HashCode(), chunked.HashCode())
	assert.Equal(t, tree.Size(), chunked.Size())
	assert.True(t, CanonicalEqual[int32](tree, chunked))
}

func TestChunkActuallyProducesChunkBoundaries(t *testing.T) {
	const n = 4000
	tree := BuildBlock[int32](leaves(n))
	chunked := Chunk[int32](tree)
	assert.True(t, containsChunkedNode[int32](chunked))
}

func TestChunkIsIdempotent(t *testing.T) {
	tree := BuildBlock[int32](leaves(3000))
	once := Chunk[int32](tree)
	twice := Chunk[int32](once)
	assert.Equal(t, once.HashCode(), twice.HashCode())
}

func TestUnchunkRoundTripsToOriginalContent(t *testing.T) {
	const n = 3500
	tree := BuildBlock[int32](leaves(n))
	chunked := Chunk[int32](tree)
	unchunked := Unchunk[int32](chunked)

	assert.True(t, CanonicalEqual[int32](tree, unchunked))
	assert.False(t, containsChunkedNode[int32](unchunked))
}

func TestChunkedNodeFirstLastWithoutDecoding(t *testing.T) {
	const n = 2500
	tree := BuildBlock[int32](leaves(n))
	chunked := Chunk[int32](tree)
	require.True(t, containsChunkedNode[int32](chunked))

	assert.Equal(t, tree.First(), chunked.First())
	assert.Equal(t, tree.Last(), chunked.Last())
}

func TestChunkedNodeLeftRightMatchUnchunkedShape(t *testing.T) {
	const n = 4000
	tree := BuildBlock[int32](leaves(n))
	chunked := Chunk[int32](tree)

	var cn *ChunkedNode[int32]
	var find func(Node[int32])
	find = func(node Node[int32]) {
		if cn != nil || node == nil {
			return
		}
		if c, ok := node.(*ChunkedNode[int32]); ok {
			cn = c
			return
		}
		for _, p := range node.SplitParts() {
			find(p)
		}
	}
	find(chunked)
	require.NotNil(t, cn)

	left, right := cn.Left(), cn.Right()
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, cn.Size(), left.Size()+right.Size())
}

// A composite subtree repeated many times adjacent to itself RLE-compresses
// into an RLENode whose base itself has nonzero ChunkHeight (unlike a run of
// raw leaves, whose base sits at height 0). Chunking a tree containing such
// a run has to walk into that RLENode's own Left/Right split rather than
// freezing it as one opaque leaf unit, and decoding has to re-form it with
// Combine rather than a bare BinaryNode (spec.md §8 scenarios B and F).
func TestChunkAndUnchunkPreserveHashAcrossNestedRLERun(t *testing.T) {
	block := BuildBlock[int32](leaves(8))
	const repeats = 400
	blockRun := make([]Node[int32], repeats)
	for i := range blockRun {
		blockRun[i] = block
	}
	// The run follows enough distinct leaves that the tree around it
	// crosses MaxChunkHeight; the run alone stays at the block's chunk height.
	tree := BuildBlock[int32](append(leaves(300), blockRun...))

	chunked := Chunk[int32](tree)
	require.True(t, containsChunkedNode[int32](chunked), "test input should cross MaxChunkHeight")

	assert.Equal(t, tree.HashCode(), chunked.HashCode())
	assert.True(t, CanonicalEqual[int32](tree, Unchunk[int32](chunked)))
}

func TestSplitAndConcatSurviveChunking(t *testing.T) {
	const n = 5000
	tree := Chunk[int32](BuildBlock[int32](leaves(n)))

	res := Split[int32](tree, 1234)
	rejoined := Concat[int32](res.Left, res.Right)
	assert.True(t, CanonicalEqual[int32](tree, rejoined))
}
