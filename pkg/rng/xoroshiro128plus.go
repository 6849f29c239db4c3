package rng

import "math/bits"

var _ Algorithm = &Xoroshiro128Plus{}

// Xoroshiro128Plus is a rotate/xor/shift generator with 128 bits of state
type Xoroshiro128Plus struct {
	state [2]uint64
}

// NewXoroshiro128PlusAlgorithm returns a Xoroshiro128Plus seeded with seed
func NewXoroshiro128PlusAlgorithm(seed uint64) *Xoroshiro128Plus {
	x := &Xoroshiro128Plus{}
	x.Seed(seed)
	return x
}

func (x *Xoroshiro128Plus) Next() uint64 {
	s0 := x.state[0]
	s1 := x.state[1]
	result := s0 + s1

	s1 ^= s0
	x.state[0] = bits.RotateLeft64(s0, 24) ^ (s1 << 16)
	x.state[1] = bits.RotateLeft64(s1, 37)

	return result
}

// Seed expands seed through SplitMix64 so that low entropy seeds never produce a weak state
func (x *Xoroshiro128Plus) Seed(seed uint64) {
	x.state = expandSeed(seed)
}
