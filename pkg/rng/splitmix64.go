package rng

var _ Algorithm = &SplitMix64{}

const (
	golden uint64 = 0x9E3779B97F4A7C15
	mix1   uint64 = 0xBF58476D1CE4E5B9
	mix2   uint64 = 0x94D049BB133111EB
)

// SplitMix64 is a fast 64-bit scrambler with a single word of state.  It mixes on every call rather
// than at seed time, so any seed (including zero) is usable.  It is also used to expand a single seed
// into the state of the two-word generators.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64Algorithm returns a SplitMix64 seeded with seed
func NewSplitMix64Algorithm(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

func (s *SplitMix64) Next() uint64 {
	s.state += golden

	z := s.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 32)
}

func (s *SplitMix64) Seed(seed uint64) {
	s.state = seed
}

// expandSeed draws two words from a SplitMix64 seeded with seed
func expandSeed(seed uint64) [2]uint64 {
	sm := NewSplitMix64Algorithm(seed)
	return [2]uint64{sm.Next(), sm.Next()}
}
