package rng

import (
	"encoding/binary"
	"math"
)

var _ Stream = &Prng{}
var _ Rounder = &Prng{}

// maxWord is the largest raw word as a float32, which rounds up to 2^64
const maxWord = float32(math.MaxUint64)

// Prng binds a single algorithm to the value generation functions.  A Prng is not safe for concurrent
// use; give each goroutine its own generator.
type Prng struct {
	alg      Algorithm
	rounding Rounding
}

// Option configures a Prng
type Option func(p *Prng)

// WithRounding sets the rounding applied to integer ranges.  The default is RoundingInherited.
func WithRounding(r Rounding) Option {
	return func(p *Prng) {
		p.rounding = r
	}
}

// New returns a generator using the algorithm kind seeded with seed
func New(kind Kind, seed uint64, opts ...Option) (*Prng, error) {
	alg, err := NewAlgorithm(kind, seed)
	if err != nil {
		return nil, err
	}
	return NewWithAlgorithm(alg, opts...), nil
}

// NewWithAlgorithm wraps an already seeded algorithm.  The Prng takes ownership of alg and it
// should not be advanced by anything else afterwards.
func NewWithAlgorithm(alg Algorithm, opts ...Option) *Prng {
	p := &Prng{alg: alg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewSplitMix64 returns a generator using the SplitMix64 scrambler
func NewSplitMix64(seed uint64, opts ...Option) *Prng {
	return NewWithAlgorithm(NewSplitMix64Algorithm(seed), opts...)
}

// NewXoroshiro128Plus returns a generator using xoroshiro128+
func NewXoroshiro128Plus(seed uint64, opts ...Option) *Prng {
	return NewWithAlgorithm(NewXoroshiro128PlusAlgorithm(seed), opts...)
}

// NewXorshift128Plus returns a generator using xorshift128+
func NewXorshift128Plus(seed uint64, opts ...Option) *Prng {
	return NewWithAlgorithm(NewXorshift128PlusAlgorithm(seed), opts...)
}

// Seed resets the generator.  The sequence that follows is identical to that of a new generator
// created with the same seed.
func (p *Prng) Seed(seed uint64) {
	p.alg.Seed(seed)
}

// Next returns the next raw 64-bit word
func (p *Prng) Next() uint64 {
	return p.alg.Next()
}

// RandomFactor returns a uniform factor in [0.0, 1.0].  Both ends are inclusive because large words
// round to 2^64 when converted to float32.
func (p *Prng) RandomFactor() float32 {
	return float32(p.alg.Next()) / maxWord
}

// Chance returns true with a probability of approximately chance.  A chance of 1 always succeeds.
func (p *Prng) Chance(chance float32) bool {
	return chance >= p.RandomFactor()
}

// Rounding returns the rounding applied to integer ranges
func (p *Prng) Rounding() Rounding {
	return p.rounding
}

// Read fills b with raw words in little endian order.  It always returns len(b) and a nil error.
func (p *Prng) Read(b []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(b) {
		binary.LittleEndian.PutUint64(buf[:], p.alg.Next())
		n += copy(b[n:], buf[:])
	}
	return n, nil
}
