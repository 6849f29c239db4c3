package rng

import (
	"fmt"
	"strings"
)

// Kind selects one of the bundled generator algorithms
type Kind int

const (
	_ Kind = iota
	KindSplitMix64
	KindXoroshiro128Plus
	KindXorshift128Plus
)

// ErrUnknownKind is returned when an algorithm name or Kind value is not recognized
var ErrUnknownKind error = fmt.Errorf("rng: unknown algorithm")

func (k Kind) String() string {
	switch k {
	case KindSplitMix64:
		return "splitmix64"
	case KindXoroshiro128Plus:
		return "xoroshiro128plus"
	case KindXorshift128Plus:
		return "xorshift128plus"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds returns every bundled algorithm in a stable order
func Kinds() []Kind {
	return []Kind{KindSplitMix64, KindXoroshiro128Plus, KindXorshift128Plus}
}

// ParseKind returns the Kind for an algorithm name.  Names are case insensitive and the short
// family names (splitmix, xoroshiro, xorshift) are accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "splitmix64", "splitmix":
		return KindSplitMix64, nil
	case "xoroshiro128plus", "xoroshiro128+", "xoroshiro":
		return KindXoroshiro128Plus, nil
	case "xorshift128plus", "xorshift128+", "xorshift":
		return KindXorshift128Plus, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
}

// NewAlgorithm constructs the algorithm for kind seeded with seed
func NewAlgorithm(kind Kind, seed uint64) (Algorithm, error) {
	switch kind {
	case KindSplitMix64:
		return NewSplitMix64Algorithm(seed), nil
	case KindXoroshiro128Plus:
		return NewXoroshiro128PlusAlgorithm(seed), nil
	case KindXorshift128Plus:
		return NewXorshift128PlusAlgorithm(seed), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
