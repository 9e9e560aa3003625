package splithash

import "sync/atomic"

// BinaryNode is a full binary merge of two subtrees. Height and chunkHeight
// are packed into a single uint16 (8 bits each) purely to shrink the node's
// memory footprint, per spec.md's "Encoded (height, chunkHeight)" note;
// size is stored signed, with a negative value meaning "this node is itself
// a chunk boundary" (BinaryNode.IsChunked), again per spec.md.
type BinaryNode[X comparable] struct {
	left, right Node[X]
	csize       int32
	heightPair  uint16 // height<<8 | chunkHeight

	// lHash is the lazily computed, cached canonical hash. 0 means
	// "not yet computed"; since a genuine hash of exactly 0 is simply
	// recomputed on the next call, a relaxed atomic load/store is enough —
	// concurrent writers racing to compute it converge on the same value.
	lHash atomic.Int32
}

func newBinaryNode[X comparable](left, right Node[X], size int) *BinaryNode[X] {
	heightE := 1 + max(left.Height(), right.Height())
	chunkHeightE := 1 + max(left.ChunkHeight(), right.ChunkHeight())
	return &BinaryNode[X]{
		left:       left,
		right:      right,
		csize:      int32(size),
		heightPair: uint16(heightE<<8) | uint16(chunkHeightE&0xff),
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (b *BinaryNode[X]) HashCode() int32 {
	if h := b.lHash.Load(); h != 0 {
		return h
	}
	h := siphash24(b.left.HashCode()-magicP2, b.right.HashCode()+magicP3)
	b.lHash.Store(h)
	return h
}

func (b *BinaryNode[X]) HashAt(index int) int32 {
	if index == 0 {
		return b.HashCode()
	}
	if index == 1 {
		return (b.left.HashCode() - b.right.HashCode()) ^ b.HashCode()
	}

	// 64 bits or more are requested of a single SipHash call. This should
	// normally not happen; see UnlikelyHashDerivations.
	recordUnlikelyHashDerivation(index)
	nindex := index / 2
	h := b.HashCode()
	if h > 0 {
		return siphash24(
			b.left.HashAt(nindex)-magicP3,
			b.right.HashAt(index-nindex)+magicP1*h,
		)
	}
	return siphash24(
		b.right.HashAt(nindex)-magicP3*h,
		b.left.HashAt(index-nindex)+magicP1,
	)
}

func (b *BinaryNode[X]) Size() int {
	if b.csize < 0 {
		return int(-b.csize)
	}
	return int(b.csize)
}

func (b *BinaryNode[X]) First() X { return b.left.First() }
func (b *BinaryNode[X]) Last() X  { return b.right.Last() }

func (b *BinaryNode[X]) Left() Node[X]  { return b.left }
func (b *BinaryNode[X]) Right() Node[X] { return b.right }

func (b *BinaryNode[X]) Height() int      { return int(b.heightPair >> 8) }
func (b *BinaryNode[X]) ChunkHeight() int { return int(b.heightPair & 0xff) }

func (b *BinaryNode[X]) IsChunked() bool { return b.csize < 0 }

func (b *BinaryNode[X]) Chunk() Node[X] {
	if b.IsChunked() {
		return b
	}
	l := b.left.Chunk()
	r := b.right.Chunk()
	nt := newBinaryNode(l, r, -(l.Size() + r.Size()))
	if nt.ChunkHeight() > MaxChunkHeight {
		return chunkTree[X](nt)
	}
	return nt
}

func (b *BinaryNode[X]) SplitParts() []Node[X] { return []Node[X]{b.left, b.right} }

func (b *BinaryNode[X]) EqualTo(other Node[X]) bool {
	if b.HashCode() != other.HashCode() {
		return false
	}
	if b == other {
		return true
	}
	return b.left.EqualTo(other.Left()) && b.right.EqualTo(other.Right())
}
