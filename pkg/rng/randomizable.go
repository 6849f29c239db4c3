package rng

import (
	"math"
	"unsafe"
)

// Integer is the set of integer types that can be generated
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Float is the set of floating point types that can be generated
type Float interface {
	float32 | float64
}

// Number is every type supported by Generate and Range
type Number interface {
	Integer | Float
}

// Rounding selects the bias added to the span of an integer range before truncation
type Rounding int

const (
	// RoundingInherited adds 0.5 to every integer span except int32, which subtracts 0.5.  The int32
	// case can never produce its maximum bound.  It is the default so that existing sequences are
	// reproduced exactly.
	RoundingInherited Rounding = iota
	// RoundingSymmetric adds 0.5 for every integer type so both bounds are reachable
	RoundingSymmetric
)

func (r Rounding) String() string {
	switch r {
	case RoundingInherited:
		return "inherited"
	case RoundingSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Rounder is implemented by streams that choose their integer range rounding
type Rounder interface {
	Rounding() Rounding
}

// Generate returns an unconstrained value of type T.
//
// Integers take the low bits of one raw word, so every value of a signed type (negative included)
// is reachable.  Floats are MAX * (a - b) for two uniform factors a and b, which spreads values over
// [-MAX, MAX] with a triangular shape peaked at zero rather than uniformly.
func Generate[T Number](s Stream) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		a := s.RandomFactor()
		b := s.RandomFactor()
		return T(math.MaxFloat32 * (a - b))
	case float64:
		a := s.RandomFactor()
		b := s.RandomFactor()
		return T(math.MaxFloat64 * float64(a-b))
	default:
		return T(s.Next())
	}
}

// Range returns a value of type T intended to lie in [minimum, maximum].  All arithmetic is done in
// 32-bit floating point, for float64 as well.  If minimum > maximum the integer span wraps and the
// result is effectively unconstrained; callers are responsible for ordering the bounds.
func Range[T Number](s Stream, minimum, maximum T) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		diff := float32(maximum - minimum)
		return T(float32(minimum) + float32(s.RandomFactor()*diff))
	}

	diff := float32(maximum-minimum) + roundingBias[T](s)
	// the explicit conversion stops the multiply-add from being fused on some architectures
	return saturate[T](float32(minimum) + float32(s.RandomFactor()*diff))
}

func roundingBias[T Number](s Stream) float32 {
	var zero T
	if _, ok := any(zero).(int32); !ok {
		return 0.5
	}
	if r, ok := s.(Rounder); ok && r.Rounding() == RoundingSymmetric {
		return 0.5
	}
	return -0.5
}

// saturate truncates f toward zero and clamps it to the limits of integer type T.  NaN becomes 0.
func saturate[T Number](f float32) T {
	lo, hi := integerLimits[T]()
	v := math.Trunc(float64(f))
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}
	return T(v)
}

// integerLimits returns the smallest and largest values of integer type T
func integerLimits[T Number]() (T, T) {
	var zero T
	size := uint(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		top := uint64(1)<<(size-1) - 1
		return T(^top), T(top)
	}
	return 0, T(^uint64(0) >> (64 - size))
}
