package splithash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeIteratorVisitsAllLeaves(t *testing.T) {
	tree := BuildBlock[int32](leaves(37))
	it := NewNodeIterator[int32](tree, 0, DirectionRight)
	count := 0
	for it.HasNext() {
		n := it.Next()
		require.Equal(t, 0, n.Height())
		count++
	}
	assert.Equal(t, 37, count)
}

func TestNodeIteratorLeftAndRightCoverSameSet(t *testing.T) {
	tree := BuildBlock[int32](leaves(21))

	right := NewNodeIterator[int32](tree, 0, DirectionRight)
	var rightVals []int32
	for right.HasNext() {
		rightVals = append(rightVals, right.Next().First())
	}

	left := NewNodeIterator[int32](tree, 0, DirectionLeft)
	var leftVals []int32
	for left.HasNext() {
		leftVals = append(leftVals, left.Next().First())
	}

	require.Len(t, leftVals, len(rightVals))
	for i := range rightVals {
		assert.Equal(t, rightVals[i], leftVals[len(leftVals)-1-i])
	}
}

func TestLazyIndexableIteratorCachesAndBounds(t *testing.T) {
	tree := BuildBlock[int32](leaves(5))
	lazy := NewLazyIndexableIterator(NewNodeIterator[int32](tree, 0, DirectionRight))

	first := lazy.Get(0)
	require.NotNil(t, first)
	assert.Equal(t, first, lazy.Get(0))

	assert.Nil(t, lazy.Get(999))
}

func TestLazyIndexableIteratorFirstReversed(t *testing.T) {
	tree := BuildBlock[int32](leaves(6))
	lazy := NewLazyIndexableIterator(NewNodeIterator[int32](tree, 0, DirectionRight))
	for i := 0; i < 3; i++ {
		lazy.Get(i)
	}
	rev := lazy.FirstReversed(3)
	require.Len(t, rev, 3)
	assert.Equal(t, lazy.Get(0), rev[2])
	assert.Equal(t, lazy.Get(2), rev[0])
}
