package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenVectors(t *testing.T) {
	tt := []struct {
		name string
		alg  Algorithm
		exp  []uint64
	}{
		{name: "splitmix64 seed 42", alg: NewSplitMix64Algorithm(42), exp: []uint64{0xbdd73227e99238fc, 0x28efe333cb56d457, 0x47526757daf936aa}},
		{name: "splitmix64 seed 0", alg: NewSplitMix64Algorithm(0), exp: []uint64{0xe220a8385d7c35e6, 0x6e789e6a1330c74a, 0x06c45d188b45a266}},
		{name: "xoroshiro128plus seed 42", alg: NewXoroshiro128PlusAlgorithm(42), exp: []uint64{0xe6c7155bb4e90d53, 0x4f9b466eb730f9b6, 0xbb3d58b19345af86}},
		{name: "xoroshiro128plus seed 0", alg: NewXoroshiro128PlusAlgorithm(0), exp: []uint64{0x509946a270acfd30, 0xd7ad880a9f54eaf1, 0x081a2da1351c0c45}},
		{name: "xorshift128plus seed 42", alg: NewXorshift128PlusAlgorithm(42), exp: []uint64{0xb07b2fcd07a79444, 0xba48bf7fc3c3565d, 0x2afb4258a81aa60a}},
		{name: "xorshift128plus seed 0", alg: NewXorshift128PlusAlgorithm(0), exp: []uint64{0x017e11a27b8ea653, 0x5ff1bbacc50b7a40, 0x92a6bca0a28e6f07}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			for i, exp := range tc.exp {
				assert.Equal(t, exp, tc.alg.Next(), "word %d", i)
			}
		})
	}
}

// The first splitmix64 word is the documented mix applied by hand to 42 + golden
func TestSplitMix64FirstWord(t *testing.T) {
	z := uint64(42) + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 32)

	assert.Equal(t, z, NewSplitMix64Algorithm(42).Next())
}

func TestSeedExpansion(t *testing.T) {
	sm := NewSplitMix64Algorithm(1234)
	s0, s1 := sm.Next(), sm.Next()

	xr := NewXoroshiro128PlusAlgorithm(1234)
	assert.Equal(t, [2]uint64{s0, s1}, xr.state)

	xs := NewXorshift128PlusAlgorithm(1234)
	assert.Equal(t, [2]uint64{s0, s1}, xs.state)
}

func TestDeterminism(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			a, err := NewAlgorithm(kind, 0xdeadbeef)
			require.NoError(t, err)
			b, err := NewAlgorithm(kind, 0xdeadbeef)
			require.NoError(t, err)

			for i := 0; i < 10000; i++ {
				if !assert.Equal(t, a.Next(), b.Next(), "diverged at word %d", i) {
					return
				}
			}
		})
	}
}

func TestReseed(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			fresh, err := NewAlgorithm(kind, 99)
			require.NoError(t, err)
			expected := make([]uint64, 1000)
			for i := range expected {
				expected[i] = fresh.Next()
			}

			advanced, err := NewAlgorithm(kind, 7)
			require.NoError(t, err)
			for i := 0; i < 5000; i++ {
				advanced.Next()
			}
			advanced.Seed(99)

			received := make([]uint64, 1000)
			for i := range received {
				received[i] = advanced.Next()
			}
			assert.Equal(t, expected, received)
		})
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			a, _ := NewAlgorithm(kind, 1)
			b, _ := NewAlgorithm(kind, 2)
			assert.NotEqual(t, a.Next(), b.Next())
		})
	}
}

func TestParseKind(t *testing.T) {
	tt := []struct {
		name  string
		in    string
		exp   Kind
		error bool
	}{
		{name: "splitmix64", in: "splitmix64", exp: KindSplitMix64},
		{name: "splitmix alias", in: "splitmix", exp: KindSplitMix64},
		{name: "xoroshiro128plus", in: "xoroshiro128plus", exp: KindXoroshiro128Plus},
		{name: "xoroshiro mixed case", in: " Xoroshiro128+ ", exp: KindXoroshiro128Plus},
		{name: "xorshift128plus", in: "xorshift128plus", exp: KindXorshift128Plus},
		{name: "xorshift alias", in: "xorshift", exp: KindXorshift128Plus},
		{name: "unknown", in: "mt19937", error: true},
		{name: "empty", in: "", error: true},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParseKind(tc.in)
			if tc.error {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, k)
		})
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		k, err := ParseKind(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, k)
	}
}

func TestNewAlgorithmUnknown(t *testing.T) {
	_, err := NewAlgorithm(Kind(42), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "Kind(42)")
}
