package rng

import "math/rand"

var _ rand.Source64 = source{}

// source adapts a Prng to math/rand
type source struct {
	p *Prng
}

// Source returns a math/rand.Source64 backed by p, so that p can drive rand.New(p.Source()).  The
// source shares state with p.
func (p *Prng) Source() rand.Source64 {
	return source{p: p}
}

func (s source) Int63() int64 {
	return int64(s.p.Next() >> 1)
}

func (s source) Uint64() uint64 {
	return s.p.Next()
}

func (s source) Seed(seed int64) {
	s.p.Seed(uint64(seed))
}
