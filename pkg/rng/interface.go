package rng

// Algorithm is a raw 64-bit bit stream.  Implementations own their state exclusively and are not
// safe for concurrent use.
type Algorithm interface {
	// Next advances the state by one step and returns a 64-bit word
	Next() uint64
	// Seed deterministically resets all internal state from a single 64-bit value
	Seed(seed uint64)
}

// Stream is anything that can produce raw words and uniform factors.  Generate and Range are
// written against Stream so that they work with any generator, not just Prng.
type Stream interface {
	Next() uint64
	RandomFactor() float32
}
