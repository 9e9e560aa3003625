package splithash

import "github.com/bits-and-blooms/bitset"

// chunkBits is the structure bit-sequence format used by the chunk codec: a
// bit set at position i says "the i-th node visited in a pre-order walk of
// the flattened subtree is an internal split", a clear bit says "it's a
// leaf unit" (see encodeChunkTree). Aliased rather than wrapped so chunked.go
// doesn't need to know it comes from bits-and-blooms/bitset.
type chunkBits = *bitset.BitSet

// Chunk re-encodes tree as a chunk-compressed tree wherever any subtree's
// chunk-height has grown past MaxChunkHeight, without changing its hash,
// size, or content. It is idempotent: chunking an already-chunked tree is a
// no-op. This is the package-level entry point mirroring Concat and Split;
// the actual decision of whether a given BinaryNode needs chunking lives on
// Node.Chunk, which each node kind applies bottom-up to its own children.
// Combine itself never chunks.
func Chunk[X comparable](tree Node[X]) Node[X] {
	if tree == nil {
		return nil
	}
	return tree.Chunk()
}

// Unchunk returns tree with every ChunkedNode replaced by its reconstructed
// logical subtree, recursively. The result is content-equal to tree and
// carries the same hash, but holds no chunk boundaries — useful for tests
// that want to compare shapes without chunking as a confound. Internal
// splits are rebuilt with Combine, not a bare BinaryNode, for the same
// reason decodeChunkTree is: an RLENode can itself have been chunked (see
// RLENode.Chunk in rle.go), so unwrapping it and recombining is what
// reproduces its original hash instead of silently flattening it away.
func Unchunk[X comparable](tree Node[X]) Node[X] {
	if tree == nil {
		return nil
	}
	if chunked, ok := tree.(*ChunkedNode[X]); ok {
		return Unchunk[X](chunked.root())
	}
	if base, multiplicity := unwrapRLE(tree); multiplicity > 1 {
		return newRLENode(Unchunk[X](base), multiplicity)
	}
	left, right := tree.Left(), tree.Right()
	if left == nil && right == nil {
		return tree
	}
	return Combine(Unchunk[X](left), Unchunk[X](right))
}

// chunkTree flattens the subtree rooted at a chunk-boundary BinaryNode into
// a ChunkedNode. It's only ever called on a node whose ChunkHeight already
// exceeds MaxChunkHeight (BinaryNode.Chunk is the sole caller), never as a
// general-purpose compressor.
func chunkTree[X comparable](n Node[X]) Node[X] {
	bn, ok := n.(*BinaryNode[X])
	if !ok {
		return n
	}
	leaves, bits := encodeChunkTree(bn)
	return newChunkedNode(leaves, bits, bn.HashCode(), bn.Size(), bn.Height())
}

// encodeChunkTree walks bn's two children in pre-order, emitting a set bit
// for every node it descends through whose ChunkHeight is still nonzero —
// the same boundary spec.md defines the codec over — and collecting every
// node whose ChunkHeight has already reset to 0 (leaves, already-chunked
// boundaries, and RLE runs over either) as a leaf unit. Recursion goes
// through Node.Left/Node.Right rather than a concrete-type switch, so an
// RLENode whose base hasn't reached a chunk boundary still gets flattened
// through its own Left/Right split instead of being frozen as one leaf
// unit. bn itself is always decomposed one level regardless of its own
// ChunkHeight, since flattening bn is exactly what this call is for.
func encodeChunkTree[X comparable](bn *BinaryNode[X]) ([]Node[X], chunkBits) {
	bits := bitset.New(0)
	var leaves []Node[X]
	var idx uint

	var walk func(Node[X])
	walk = func(n Node[X]) {
		if n.ChunkHeight() != 0 {
			bits.Set(idx)
			idx++
			walk(n.Left())
			walk(n.Right())
			return
		}
		idx++
		leaves = append(leaves, n)
	}

	bits.Set(idx)
	idx++
	walk(bn.Left())
	walk(bn.Right())

	return leaves, bits
}

// decodeChunkTree is encodeChunkTree's inverse: it rebuilds the logical
// subtree a chunk encoding stands for. Internal splits are rebuilt with
// Combine rather than a bare BinaryNode, since encodeChunkTree can flatten
// an RLENode's base straight into a leaf unit (see its doc comment) — using
// Combine re-forms that RLENode instead of silently replacing it with a
// BinaryNode whose hash doesn't match the pre-chunked original's.
func decodeChunkTree[X comparable](bits chunkBits, leaves []Node[X]) Node[X] {
	var idx uint
	li := 0

	var build func() Node[X]
	build = func() Node[X] {
		isInternal := bits.Test(idx)
		idx++
		if isInternal {
			l := build()
			r := build()
			return Combine(l, r)
		}
		leaf := leaves[li]
		li++
		return leaf
	}

	return build()
}
