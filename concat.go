package splithash

// Concat joins a and b into the single canonical tree holding a's elements
// followed by b's, in O(log²n). Either operand may be nil, standing in for
// the empty sequence.
func Concat[X comparable](a, b Node[X]) Node[X] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	right := transformRight(a)
	left := transformLeft(b)
	return concatFringes(right, left)
}

// concatFringes interleaves a RightFringe and a LeftFringe layer by layer,
// bottom-up, running one merge round per layer until exactly one node
// remains — the canonical root of the joined tree.
func concatFringes[X comparable](left RightFringe[X], right LeftFringe[X]) Node[X] {
	var elems []Node[X]
	height := 0

	lh, rh := left.height, right.height

	for {
		if height < lh {
			elems = concatNodeArrays(left.fringes[height], elems)
		} else if height == lh {
			elems = concatNodeArrays(left.top, elems)
		}

		if height < rh {
			elems = concatNodeArrays(elems, right.fringes[height])
		} else if height == rh {
			elems = concatNodeArrays(elems, right.top)
		}

		if height >= lh && height >= rh && len(elems) == 1 {
			return elems[0]
		}
		elems = DoRound(elems)
		height++
	}
}

// concatNodeArrays returns a fresh slice holding a followed by b, never
// aliasing either input's backing array.
func concatNodeArrays[X comparable](a, b []Node[X]) []Node[X] {
	out := make([]Node[X], 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
