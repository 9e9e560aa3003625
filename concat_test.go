package splithash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatWithNilReturnsOtherOperand(t *testing.T) {
	a := NewIntLeaf(1)
	assert.Equal(t, a, Concat[int32](nil, a))
	assert.Equal(t, a, Concat[int32](a, nil))
}

func TestConcatSizeIsSumOfOperands(t *testing.T) {
	a := BuildBlock[int32](leaves(13))
	b := BuildBlock[int32](leaves(29))
	joined := Concat[int32](a, b)
	require.NotNil(t, joined)
	assert.Equal(t, a.Size()+b.Size(), joined.Size())
}

func TestConcatOrderPreservesElements(t *testing.T) {
	a := BuildBlock[int32](leaves(10))
	offset := leaves(10)
	for i, l := range offset {
		offset[i] = NewIntLeaf(l.First() + 100)
	}
	b := BuildBlock[int32](offset)

	joined := Concat[int32](a, b)

	it := NewNodeIterator[int32](joined, 0, DirectionLeft)
	var got []int32
	for it.HasNext() {
		got = append(got, it.Next().First())
	}
	require.Len(t, got, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, int32(i), got[i])
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, int32(i+100), got[i+10])
	}
}

// Concatenating a sequence piecemeal, in any grouping, must land on the
// same canonical tree as building it in one shot — the history-independence
// guarantee SplitHash is built around.
func TestConcatIsHistoryIndependent(t *testing.T) {
	const n = 300
	elems := leaves(n)
	whole := BuildBlock[int32](elems)

	var left, right Node[int32]
	left = BuildBlock[int32](elems[:100])
	mid := BuildBlock[int32](elems[100:210])
	right = BuildBlock[int32](elems[210:])

	reassembled := Concat[int32](Concat[int32](left, mid), right)

	assert.True(t, CanonicalEqual[int32](whole, reassembled))
}

// Folding Concat over a sequence right-to-left (each leaf prepended ahead
// of the accumulator, driving transformLeft's prepend path) must converge
// on exactly the same canonical tree as folding left-to-right (each leaf
// appended after the accumulator, driving transformRight's append path) —
// spec.md's invariant that canonical shape never depends on construction
// order, exercised here across the two directions rather than across
// groupings of pre-built blocks.
func TestConcatLeftToRightMatchesRightToLeftFold(t *testing.T) {
	const n = 240
	elems := leaves(n)

	var leftToRight Node[int32]
	for _, l := range elems {
		leftToRight = Concat[int32](leftToRight, l)
	}

	var rightToLeft Node[int32]
	for i := n - 1; i >= 0; i-- {
		rightToLeft = Concat[int32](elems[i], rightToLeft)
	}

	require.Equal(t, leftToRight.HashCode(), rightToLeft.HashCode())
	assert.True(t, CanonicalEqual[int32](leftToRight, rightToLeft))
	assert.Equal(t, collectValues(leftToRight), collectValues(rightToLeft))
}

func TestConcatAssociativity(t *testing.T) {
	const n = 180
	elems := leaves(n)
	a := BuildBlock[int32](elems[:60])
	b := BuildBlock[int32](elems[60:120])
	c := BuildBlock[int32](elems[120:])

	leftAssoc := Concat[int32](Concat[int32](a, b), c)
	rightAssoc := Concat[int32](a, Concat[int32](b, c))

	assert.True(t, CanonicalEqual[int32](leftAssoc, rightAssoc))
}
