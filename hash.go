package splithash

import "math/bits"

// Magic relative primes, mixed in at node-kind-specific offsets so that the
// hash derivations of different node kinds decorrelate from one another.
const (
	magicP1 int32 = 1664525
	magicP2 int32 = 22695477
	magicP3 int32 = 1103515245
)

// siphash constants: the four standard 64-bit SipHash initial lanes.
const (
	sipV0 uint64 = 0x736f6d6570736575
	sipV1 uint64 = 0x646f72616e646f6d
	sipV2 uint64 = 0x6c7967656e657261
	sipV3 uint64 = 0x7465646279746573
)

// Hash is an "infinitely" indexable and expandable hash family. The chance
// that two distinct objects collide at HashAt(i) must decrease exponentially
// as i grows; a family that doesn't have that property can make the
// canonicalization algorithm in this package loop forever, since merge
// rounds and fringe scans both keep drawing new hash bits from HashAt until
// every adjacent pair resolves.
type Hash interface {
	HashAt(i int) int32
}

func rotl64(x uint64, b uint) uint64 {
	return bits.RotateLeft64(x, int(b))
}

// siphash24 is a SipHash-2-4 variant over two 32-bit inputs, used throughout
// this package as the mixing primitive for every node-kind-specific hash
// derivation. The two inputs are combined into a single 64-bit message by
// rotating the first left 32 bits and adding the second.
func siphash24(x1, x2 int32) int32 {
	v0, v1, v2, v3 := sipV0, sipV1, sipV2, sipV3

	m := rotl64(uint64(uint32(x1)), 32) + uint64(uint32(x2))

	v3 ^= m
	for i := 0; i < 2; i++ {
		v0 += v1
		v1 = rotl64(v1, 13) ^ v0
		v0 = rotl64(v0, 32)
		v2 += v3
		v3 = rotl64(v3, 16) ^ v2
		v0 += v3
		v3 = rotl64(v3, 21) ^ v0
		v2 += v1
		v1 = rotl64(v1, 17) ^ v2
		v2 = rotl64(v2, 32)
	}
	v0 ^= m

	v2 ^= 0xff
	for i := 0; i < 4; i++ {
		v0 += v1
		v1 = rotl64(v1, 13) ^ v0
		v0 = rotl64(v0, 32)
		v2 += v3
		v3 = rotl64(v3, 16) ^ v2
		v0 += v3
		v3 = rotl64(v3, 21) ^ v0
		v2 += v1
		v1 = rotl64(v1, 17) ^ v2
		v2 = rotl64(v2, 32)
	}

	r := v0 ^ v1 ^ v2 ^ v3
	return int32(rotl64(r, 32) ^ r)
}

// bitAt returns bit j (0 = most significant) of a 32-bit hash value.
func bitAt(value int32, j int) int {
	return int((uint32(value) >> uint(31-j)) & 1)
}
