package splithash

import "go.uber.org/zap"

// kind marks a node's classification during a merge round or fringe scan.
type kind byte

const (
	kindUnknown kind = iota
	kindMerge
	kindFringe
)

// DoRound performs one level of canonical merging: it RLE-compresses elems,
// then scans hash bits most significant first (drawing further HashAt words
// as needed) and pairs two adjacent unpaired nodes at the first bit where
// the left one has 1 and the right one 0, repeating until no two adjacent
// nodes are left unpaired. This is the merge-round engine
// from spec.md §4.3, exported because it's also how a sequence can be built
// bottom-up one block at a time (see BuildBlock), independent of Concat.
func DoRound[X comparable](elems []Node[X]) []Node[X] {
	return mergeRound(Compress(elems))
}

// BuildBlock folds leaves (or any array of same-height nodes) into a single
// canonical node by repeatedly running DoRound until one node remains. This
// is the block-construction path from the original implementation's test
// harness (spec.md §8 scenario D): an independent third way of reaching the
// same canonical tree as repeated Concat, used to cross-check
// history-independence.
func BuildBlock[X comparable](elems []Node[X]) Node[X] {
	if len(elems) == 0 {
		return nil
	}
	block := elems
	for len(block) > 1 {
		block = DoRound(block)
	}
	return block[0]
}

func mergeRound[X comparable](elems []Node[X]) []Node[X] {
	n := len(elems)
	if n == 0 {
		return elems
	}
	kinds := make([]kind, n)
	hashes := make([]int32, n)
	lastIdx := n - 1

	bitIndex := 0
	intIndex := 0
	merges := 0

	for {
		done := true

		if bitIndex == 0 {
			cacheHashesSlice(elems, kinds, hashes, 0, n, intIndex)
			intIndex++
		}

		for j := 0; j < lastIdx; j++ {
			if kinds[j] == kindUnknown && kinds[j+1] == kindUnknown {
				if bitAt(hashes[j], bitIndex) == 1 && bitAt(hashes[j+1], bitIndex) == 0 {
					kinds[j] = kindMerge
					kinds[j+1] = kindMerge
					j++
					merges++
				} else {
					done = false
				}
			}
		}
		bitIndex = (bitIndex + 1) & 31
		if done {
			break
		}
	}

	if log.Core().Enabled(zap.DebugLevel) {
		log.Debug("merge round", zap.Int("in", n), zap.Int("merges", merges), zap.Int("bits_scanned", bitIndex))
	}

	result := make([]Node[X], n-merges)
	i, ri := 0, 0
	for i < n {
		if kinds[i] == kindUnknown {
			result[ri] = elems[i]
		} else {
			result[ri] = Combine(elems[i], elems[i+1])
			i++
		}
		i++
		ri++
	}
	return result
}

// cacheHashesSlice fills hashes[from:to] with elems[k].HashAt(intIndex) for
// every still-UNKNOWN index k in that range. Used by mergeRound; the fringe
// scan has its own variant over a LazyIndexableIterator, since there the
// elements aren't all known up front.
func cacheHashesSlice[X comparable](elems []Node[X], kinds []kind, hashes []int32, from, to, intIndex int) {
	for k := from; k < to; k++ {
		if kinds[k] == kindUnknown {
			hashes[k] = elems[k].HashAt(intIndex)
		}
	}
}

func cacheHashesLazy[X comparable](elems *LazyIndexableIterator[X], kinds []kind, hashes []int32, from, to, intIndex int) {
	for k := from; k < to; k++ {
		e := elems.Get(k)
		if e == nil {
			return
		}
		if kinds[k] == kindUnknown {
			hashes[k] = e.HashAt(intIndex)
		}
	}
}

// Compress RLE-compresses adjacent nodes in elems, leaving elems untouched
// (and unallocated) if no adjacent pair is RLE-compatible.
func Compress[X comparable](elems []Node[X]) []Node[X] {
	if len(elems) == 0 {
		return elems
	}
	needsCompress := false
	for i := 1; i < len(elems); i++ {
		if IsMultipleOf(elems[i-1], elems[i]) {
			needsCompress = true
			break
		}
	}
	if !needsCompress {
		return elems
	}
	return compressRLE(elems)
}

func compressRLE[X comparable](elems []Node[X]) []Node[X] {
	stack := make([]Node[X], 0, len(elems))
	stack = append(stack, elems[0])
	for i := 1; i < len(elems); i++ {
		head := stack[len(stack)-1]
		elem := elems[i]
		if IsMultipleOf(head, elem) {
			stack[len(stack)-1] = Combine(head, elem)
		} else {
			stack = append(stack, elem)
		}
	}
	return stack
}
