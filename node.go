package splithash

// Node is a canonical SplitHash tree node. The five concrete node kinds —
// [LeafNode], [BinaryNode], [RLENode], [ChunkedNode], and the transient
// [TempBinaryNode] — all implement it; callers never need a type switch to
// work with a tree, only to build one of the two or three leaf-ish
// constructors.
//
// X is the element type. It need only support equality (Go's built-in
// comparable constraint): the tree machinery never inspects an element's
// internals, only the pre-computed hash a leaf carries.
type Node[X comparable] interface {
	Hash

	// Size is the number of elements (leaves, counting RLE multiplicity) in
	// the subtree rooted at this node.
	Size() int

	// First and Last return the leftmost and rightmost elements.
	First() X
	Last() X

	// Left and Right return the two children of an internal node. Both
	// return nil on a leaf.
	Left() Node[X]
	Right() Node[X]

	// Height is the number of binary-merge levels above the leaves, exactly
	// as in spec.md: a leaf has height 0.
	Height() int

	// ChunkHeight is the number of binary-merge levels above the nearest
	// ChunkedNode (or above the leaves, if nothing below has been chunked).
	// It is 0 for a ChunkedNode and for a leaf; a BinaryNode marked by
	// IsChunked still counts one level more than its taller child.
	ChunkHeight() int

	// Chunk returns this subtree with every part whose chunkHeight exceeds
	// MaxChunkHeight encoded as a ChunkedNode. A BinaryNode not yet marked
	// by IsChunked comes back as a new node that is; leaves and nodes already
	// marked by IsChunked come back unchanged. Chunk is idempotent.
	Chunk() Node[X]

	// IsChunked reports whether this node is itself a chunk boundary —
	// either a ChunkedNode, or a BinaryNode built directly from chunked
	// children.
	IsChunked() bool

	// SplitParts returns this node's children for a BinaryNode/RLENode, the
	// flat leaf-of-chunk array for a ChunkedNode, and nil for a LeafNode.
	// TempBinaryNode panics.
	SplitParts() []Node[X]

	// HashCode is this node's canonical hash: HashAt(0).
	HashCode() int32

	// EqualTo is content equality: same elements in the same order,
	// independent of how each side's tree happens to be shaped internally
	// (relevant only for ChunkedNode, where two subtrees with different
	// chunk boundaries can still hold the same content).
	EqualTo(other Node[X]) bool
}

// MaxChunkHeight is the chunk-height threshold past which a BinaryNode is
// re-chunked (spec.md's MAX_CHUNK_HEIGHT).
const MaxChunkHeight = 5

// FringeScanWidth is the frontier stride used while discovering a stable
// fringe boundary (spec.md's FRINGE_SCAN_WIDTH).
const FringeScanWidth = 5

// unwrapRLE returns the base node and multiplicity of n: (n, 1) for any
// non-RLE node, or (inner, multiplicity) for an RLENode. This is the Go
// free-function equivalent of the Java abstract class's static mget/msize
// helpers — Go interfaces can't carry shared default-method logic, so the
// logic that used to live on SHNode lives here instead.
func unwrapRLE[X comparable](n Node[X]) (Node[X], int) {
	if rle, ok := n.(*RLENode[X]); ok {
		return rle.node, rle.multiplicity
	}
	return n, 1
}

// IsMultipleOf reports whether a and b, once unwrapped from any RLE
// envelope, are content-equal — i.e. whether combining them should extend an
// RLE run rather than build a new BinaryNode. A TempBinaryNode is never a
// multiple of anything, since it has no hash or content to compare.
func IsMultipleOf[X comparable](a, b Node[X]) bool {
	baseA, _ := unwrapRLE(a)
	baseB, _ := unwrapRLE(b)
	if _, ok := baseA.(*TempBinaryNode[X]); ok {
		return false
	}
	if _, ok := baseB.(*TempBinaryNode[X]); ok {
		return false
	}
	return baseA.EqualTo(baseB)
}

// Combine merges a and b into a single canonical node: an RLENode if they're
// multiples of the same base, otherwise a BinaryNode.
func Combine[X comparable](a, b Node[X]) Node[X] {
	if IsMultipleOf(a, b) {
		base, ma := unwrapRLE(a)
		_, mb := unwrapRLE(b)
		return newRLENode(base, ma+mb)
	}
	return newBinaryNode(a, b, a.Size()+b.Size())
}

// Combine2 is Combine's counterpart used only while assembling a fringe:
// when a and b aren't RLE-compatible, it produces a TempBinaryNode instead
// of a BinaryNode, deferring canonicalization until the fringe machinery has
// finished reshaping the tree. A TempBinaryNode must never reach a caller.
func Combine2[X comparable](a, b Node[X]) Node[X] {
	if IsMultipleOf(a, b) {
		base, ma := unwrapRLE(a)
		_, mb := unwrapRLE(b)
		return newRLENode(base, ma+mb)
	}
	return newTempBinaryNode(a, b)
}

// CanonicalEqual compares a and b the way the original implementation's test
// harness did: hash, size, and content equality together. Hash equality
// alone is sufficient in practice (collisions are astronomically unlikely)
// but the three-part check is what spec.md's end-to-end scenarios actually
// assert, so it's exposed once here rather than re-derived in every test.
func CanonicalEqual[X comparable](a, b Node[X]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.HashCode() == b.HashCode() && a.Size() == b.Size() && a.EqualTo(b)
}
