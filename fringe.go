package splithash

// RightFringe decomposes a canonical tree into the nodes stripped from its
// right side, layer by layer, plus whatever remains at the top once no more
// fringe can be peeled off. It's the left-catenable half of a concat: the
// left operand of Concat is transformed into a RightFringe so its right edge
// can be interleaved against the left edge of the right operand.
type RightFringe[X comparable] struct {
	height  int
	top     []Node[X]
	fringes [][]Node[X] // fringes[h] is the right-fringe layer at height h
}

// LeftFringe is RightFringe's mirror image: the nodes stripped from a tree's
// left side, used to make the right operand of a Concat right-catenable.
type LeftFringe[X comparable] struct {
	height  int
	top     []Node[X]
	fringes [][]Node[X]
}

func emptyRightFringe[X comparable]() RightFringe[X] {
	return RightFringe[X]{height: -1}
}

func emptyLeftFringe[X comparable]() LeftFringe[X] {
	return LeftFringe[X]{height: -1}
}

// transformRight decomposes t into a RightFringe by repeatedly peeling the
// fringe off its right side and recursing into whatever the fringe removal
// leaves behind, until nothing is left to peel.
func transformRight[X comparable](t Node[X]) RightFringe[X] {
	current := t
	height := 0
	var fringes [][]Node[X]

	for {
		fringe := computeFringe(current, height, DirectionRight)
		remaining := collectRemaining(height, len(fringe), current, false)
		if remaining != nil {
			fringes = append(fringes, fringe)
			current = remaining
			height++
			continue
		}
		return RightFringe[X]{height: height, top: fringe, fringes: fringes}
	}
}

// transformLeft is transformRight's mirror image.
func transformLeft[X comparable](t Node[X]) LeftFringe[X] {
	current := t
	height := 0
	var fringes [][]Node[X]

	for {
		fringe := computeFringe(current, height, DirectionLeft)
		remaining := collectRemaining(height, len(fringe), current, true)
		if remaining != nil {
			fringes = append(fringes, fringe)
			current = remaining
			height++
			continue
		}
		return LeftFringe[X]{height: height, top: fringe, fringes: fringes}
	}
}

// computeFringe finds the fringe of tree at height, descending primarily in
// direction. findFringeWidth hands the fringe back in reverse scan order:
// for a right fringe (scanned right-to-left) that is already left-to-right,
// while a left fringe (scanned left-to-right) is reversed once more so that
// both come back in left-to-right order.
func computeFringe[X comparable](tree Node[X], height int, direction Direction) []Node[X] {
	fringeDir := 0
	if direction == DirectionRight {
		fringeDir = 1
	}
	lazy := NewLazyIndexableIterator(NewNodeIterator(tree, height, direction))
	fringe := findFringeWidth(lazy, fringeDir)
	if direction == DirectionLeft {
		fringe = reverseNodes(fringe)
	}
	return fringe
}

// findFringeWidth widens the scan frontier until the discovered fringe
// boundary is stable under a wider scan, which is what makes the
// decomposition independent of how much of the tree happened to be probed
// (spec.md §4.5's stability guarantee).
func findFringeWidth[X comparable](elems *LazyIndexableIterator[X], direction int) []Node[X] {
	frontier := FringeScanWidth

	for {
		frontier1 := frontier + 1

		kinds := make([]kind, frontier1)
		hashes := make([]int32, frontier1)

		fringeIdx1 := scanFringeBoundary(elems, direction, frontier, kinds, hashes)

		for i := range kinds {
			kinds[i] = kindUnknown
		}

		fringeIdx2 := scanFringeBoundary(elems, direction, frontier1, kinds, hashes)
		if fringeIdx1 == fringeIdx2 {
			return elems.FirstReversed(fringeIdx1)
		}
		frontier += FringeScanWidth
	}
}

// scanFringeBoundary classifies elements 1..frontier as FRINGE or MERGE
// based on their hash bits and returns the index of the first non-fringe
// element (the fringe's width). Fringe nodes are those whose current hash
// bit equals direction; an adjacent pair with the opposite-then-direction
// bit pattern is a MERGE that terminates the fringe.
func scanFringeBoundary[X comparable](elems *LazyIndexableIterator[X], direction, frontier int, kinds []kind, hashes []int32) int {
	minFrontier := frontier
	otherDirection := 1 - direction
	index := 1
	bitIndex := 0
	intIndex := 0
	kinds[0] = kindFringe

	for {
		done := true

		if bitIndex == 0 {
			cacheHashesLazy(elems, kinds, hashes, index, minFrontier, intIndex)
			intIndex++
		}

		if index < minFrontier {
			if e1 := elems.Get(index); e1 != nil {
				if kinds[index] == kindUnknown && bitAt(hashes[index], bitIndex) == direction {
					kinds[index] = kindFringe
					index++
				}
				if index < minFrontier && kinds[index] == kindUnknown {
					done = false
				}
			}
		}

		if !done {
			mf1 := minFrontier - 1
			for j := index; j < mf1; j++ {
				if kinds[j] == kindUnknown && kinds[j+1] == kindUnknown {
					e1 := elems.Get(j)
					e2 := elems.Get(j + 1)
					if e1 != nil && e2 != nil {
						if bitAt(hashes[j], bitIndex) == otherDirection && bitAt(hashes[j+1], bitIndex) == direction {
							kinds[j] = kindMerge
							kinds[j+1] = kindMerge
							minFrontier = j
						} else {
							done = false
						}
					}
				}
			}
		}
		bitIndex = (bitIndex + 1) & 31
		if done {
			return index
		}
	}
}

// collectRemaining strips fringeSize fringe-height nodes off one side of
// tree and rebuilds everything left over into a temporary (non-canonical)
// tree. leftward selects which side: true descends left (used by
// transformLeft), false descends right (used by transformRight).
func collectRemaining[X comparable](targetHeight, fringeSize int, tree Node[X], leftward bool) Node[X] {
	var collected []Node[X]
	collectRemaining2(targetHeight, fringeSize, tree, &collected, leftward)
	var ordered []Node[X]
	if leftward {
		ordered = collected
	} else {
		ordered = reverseNodes(collected)
	}
	compressed := Compress(ordered)
	return toTmpTree(compressed)
}

// collectRemaining2 descends along the primary direction counting
// fringe-height nodes; once count of them have been passed, it appends the
// opposite subtree to collected. It returns how many fringe-height nodes
// were encountered in this subtree, so the caller can tell when count has
// been exhausted.
func collectRemaining2[X comparable](targetHeight, count int, tree Node[X], collected *[]Node[X], leftward bool) int {
	if tree.Height() <= targetHeight {
		return 1
	}

	var primary, secondary Node[X]
	if leftward {
		primary, secondary = tree.Left(), tree.Right()
	} else {
		primary, secondary = tree.Right(), tree.Left()
	}

	primaryCount := collectRemaining2(targetHeight, count, primary, collected, leftward)
	if primaryCount < count {
		secondaryCount := collectRemaining2(targetHeight, count-primaryCount, secondary, collected, leftward)
		return primaryCount + secondaryCount
	}
	*collected = append(*collected, secondary)
	return primaryCount
}

func reverseNodes[X comparable](nodes []Node[X]) []Node[X] {
	out := make([]Node[X], len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}

// toTmpTree folds subtrees left to right via Combine2, producing a
// TempBinaryNode-laced tree suitable only as fringe-transform input.
func toTmpTree[X comparable](subtrees []Node[X]) Node[X] {
	if len(subtrees) == 0 {
		return nil
	}
	tree := subtrees[0]
	for i := 1; i < len(subtrees); i++ {
		tree = Combine2(tree, subtrees[i])
	}
	return tree
}
