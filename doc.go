/*
Package splithash is an immutable, history-independent, authenticated
sequence data structure.

It represents an ordered sequence of elements as a content-addressed binary
tree whose canonical shape depends only on the sequence's contents — never on
the order of operations that produced it. Two sequences holding the same
elements in the same order always converge on byte-identical,
hash-identical trees, regardless of whether they were built by repeated
concatenation, by splitting and re-joining, or by any other combination of
the two.

# Motivation

Ordinary balanced trees (AVL, red-black, B-trees, ...) pick their shape based
on the history of inserts and deletes: two trees holding the same elements
can differ in shape, and therefore in hash, purely because of how they were
built. That breaks any scheme that wants to compare two sequences, or prove
membership in one, by comparing a single root hash. SplitHash fixes this by
deriving the merge decision at every level purely from the *hash bits* of the
nodes being merged, never from their position. Two different construction
histories that happen to present the same multiset of nodes at the same
height always make the same merge decisions, so they converge on the same
tree.

# Approach & Sources

The core merge algorithm is adapted from SeqHash (see the "Versum" paper,
http://www.bu.edu/hic/files/2015/01/versum-ccs14.pdf). SplitHash extends
SeqHash with two things SeqHash lacks: a way to split a canonical tree back
into two canonical halves in O(log²n), and Run-Length Encoding so that runs
of identical elements collapse to O(log m) nodes instead of O(m). A third
addition, chunking, flattens bounded-height binary subtrees into n-ary arrays
purely as a cache-locality optimization; it has no effect on canonical shape
or hash.

# Layout

Five node kinds implement the [Node] interface: leaves ([LeafNode]), binary
merges ([BinaryNode]), run-length-encoded repeats ([RLENode]), chunked
subtrees ([ChunkedNode]), and a transient, non-canonical binary node used
only inside the fringe machinery ([TempBinaryNode], never returned to a
caller). [Concat], [Split], and [Chunk] are the three public entry points;
everything else in this package exists to make those three operations
correct and history-independent.
*/
package splithash
