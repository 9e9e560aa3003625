package splithash

// SplitResult holds the two canonical halves produced by Split.
type SplitResult[X comparable] struct {
	Left, Right Node[X]
}

// Split divides tree into the first i elements and the rest, both canonical,
// in O(log²n). i is clamped to [0, Size(tree)]: a negative i behaves as 0,
// an i beyond the tree's size behaves as Size(tree) — these are the
// boundary cases spec.md §7 calls out as "return empty / full, never fail."
func Split[X comparable](tree Node[X], i int) SplitResult[X] {
	return SplitResult[X]{Left: leftSplit(tree, i), Right: rightSplit(tree, i)}
}

// leftSplit returns the canonical subtree holding the first size elements.
func leftSplit[X comparable](h Node[X], size int) Node[X] {
	if size <= 0 {
		return nil
	}
	if size >= h.Size() {
		return h
	}

	var parts []Node[X]
	parts = collectLeftParts(h, size, parts)
	return rebuildAsCanonical(parts, true)
}

// collectLeftParts walks top-down, at each binary node taking the whole left
// subtree (and recursing right) when it fits within the remaining budget,
// or descending into the left subtree otherwise. The result is an ordered
// list of subtrees that together cover exactly the first pos elements.
func collectLeftParts[X comparable](h Node[X], pos int, result []Node[X]) []Node[X] {
	if pos == 0 {
		return result
	}
	left := h.Left()
	if pos >= left.Size() {
		result = append(result, left)
		return collectLeftParts(h.Right(), pos-left.Size(), result)
	}
	return collectLeftParts(left, pos, result)
}

// rightSplit returns the canonical subtree holding the last
// Size(h)-size elements.
func rightSplit[X comparable](h Node[X], size int) Node[X] {
	if size <= 0 {
		return h
	}
	if size >= h.Size() {
		return nil
	}

	var parts []Node[X]
	parts = collectRightParts(h, h.Size()-size, parts)
	return rebuildAsCanonical(reverseNodes(parts), false)
}

// collectRightParts is collectLeftParts's mirror image, walking from the
// right and collecting subtrees right to left.
func collectRightParts[X comparable](h Node[X], pos int, result []Node[X]) []Node[X] {
	if pos == 0 {
		return result
	}
	right := h.Right()
	if pos >= right.Size() {
		result = append(result, right)
		return collectRightParts(h.Left(), pos-right.Size(), result)
	}
	return collectRightParts(right, pos, result)
}

// rebuildAsCanonical is the shared final step for leftSplit and rightSplit:
// compress the collected parts, glue them into a temporary tree, transform
// that into a fringe, and concatenate it against an empty fringe on the
// opposite side to land on a canonical tree.
func rebuildAsCanonical[X comparable](parts []Node[X], asRightFringe bool) Node[X] {
	compressed := Compress(parts)
	tmpTree := toTmpTree(compressed)
	if tmpTree == nil {
		return nil
	}
	if asRightFringe {
		return concatFringes(transformRight(tmpTree), emptyLeftFringe[X]())
	}
	return concatFringes(emptyRightFringe[X](), transformLeft(tmpTree))
}
