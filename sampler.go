package randgen

import (
	"fmt"
	"strconv"

	"github.com/BTBurke/randgen/pkg/rng"
)

// sampler draws one value, returning its text form and its value for summary statistics
type sampler func(p *rng.Prng) (string, float64)

func newSampler(c Config) (sampler, error) {
	switch c.Type {
	case "i8":
		return signed[int8](c, 8)
	case "i16":
		return signed[int16](c, 16)
	case "i32":
		return signed[int32](c, 32)
	case "i64":
		return signed[int64](c, 64)
	case "isize":
		return signed[int](c, strconv.IntSize)
	case "u8":
		return unsigned[uint8](c, 8)
	case "u16":
		return unsigned[uint16](c, 16)
	case "u32":
		return unsigned[uint32](c, 32)
	case "u64":
		return unsigned[uint64](c, 64)
	case "usize":
		return unsigned[uint](c, strconv.IntSize)
	case "f32":
		return floating[float32](c, 32)
	case "f64":
		return floating[float64](c, 64)
	case "bool":
		return chance(c.Probability), nil
	case "factor":
		return factor, nil
	default:
		return nil, fmt.Errorf("unknown type %s", c.Type)
	}
}

func signed[T int8 | int16 | int32 | int64 | int](c Config, bitSize int) (sampler, error) {
	if !c.ranged() {
		return func(p *rng.Prng) (string, float64) {
			v := rng.Generate[T](p)
			return strconv.FormatInt(int64(v), 10), float64(v)
		}, nil
	}

	lo, err := strconv.ParseInt(c.Minimum, 10, bitSize)
	if err != nil {
		return nil, boundError("min", c, err)
	}
	hi, err := strconv.ParseInt(c.Maximum, 10, bitSize)
	if err != nil {
		return nil, boundError("max", c, err)
	}
	minimum, maximum := T(lo), T(hi)
	return func(p *rng.Prng) (string, float64) {
		v := rng.Range(p, minimum, maximum)
		return strconv.FormatInt(int64(v), 10), float64(v)
	}, nil
}

func unsigned[T uint8 | uint16 | uint32 | uint64 | uint](c Config, bitSize int) (sampler, error) {
	if !c.ranged() {
		return func(p *rng.Prng) (string, float64) {
			v := rng.Generate[T](p)
			return strconv.FormatUint(uint64(v), 10), float64(v)
		}, nil
	}

	lo, err := strconv.ParseUint(c.Minimum, 10, bitSize)
	if err != nil {
		return nil, boundError("min", c, err)
	}
	hi, err := strconv.ParseUint(c.Maximum, 10, bitSize)
	if err != nil {
		return nil, boundError("max", c, err)
	}
	minimum, maximum := T(lo), T(hi)
	return func(p *rng.Prng) (string, float64) {
		v := rng.Range(p, minimum, maximum)
		return strconv.FormatUint(uint64(v), 10), float64(v)
	}, nil
}

func floating[T float32 | float64](c Config, bitSize int) (sampler, error) {
	if !c.ranged() {
		return func(p *rng.Prng) (string, float64) {
			v := rng.Generate[T](p)
			return strconv.FormatFloat(float64(v), 'g', -1, bitSize), float64(v)
		}, nil
	}

	lo, err := strconv.ParseFloat(c.Minimum, bitSize)
	if err != nil {
		return nil, boundError("min", c, err)
	}
	hi, err := strconv.ParseFloat(c.Maximum, bitSize)
	if err != nil {
		return nil, boundError("max", c, err)
	}
	minimum, maximum := T(lo), T(hi)
	return func(p *rng.Prng) (string, float64) {
		v := rng.Range(p, minimum, maximum)
		return strconv.FormatFloat(float64(v), 'g', -1, bitSize), float64(v)
	}, nil
}

func chance(probability float32) sampler {
	return func(p *rng.Prng) (string, float64) {
		if p.Chance(probability) {
			return "true", 1.0
		}
		return "false", 0.0
	}
}

func factor(p *rng.Prng) (string, float64) {
	f := p.RandomFactor()
	return strconv.FormatFloat(float64(f), 'g', -1, 32), float64(f)
}

func boundError(name string, c Config, err error) error {
	value := c.Minimum
	if name == "max" {
		value = c.Maximum
	}
	if ne, ok := err.(*strconv.NumError); ok {
		err = ne.Err
	}
	return fmt.Errorf("invalid %s %q for type %s: %v", name, value, c.Type, err)
}

// wrapped returns true if the configured signed bounds are ordered but their difference overflows
// the type, which leaves the values unconstrained just like reversed bounds
func wrapped(c Config) bool {
	if !c.ranged() {
		return false
	}
	switch c.Type {
	case "i8":
		return spanOverflows[int8](c, 8)
	case "i16":
		return spanOverflows[int16](c, 16)
	case "i32":
		return spanOverflows[int32](c, 32)
	case "i64":
		return spanOverflows[int64](c, 64)
	case "isize":
		return spanOverflows[int](c, strconv.IntSize)
	default:
		return false
	}
}

func spanOverflows[T int8 | int16 | int32 | int64 | int](c Config, bitSize int) bool {
	lo, errLo := strconv.ParseInt(c.Minimum, 10, bitSize)
	hi, errHi := strconv.ParseInt(c.Maximum, 10, bitSize)
	if errLo != nil || errHi != nil {
		return false
	}
	minimum, maximum := T(lo), T(hi)
	return minimum <= maximum && maximum-minimum < 0
}

// reversed returns true if the configured minimum is greater than the maximum
func reversed(c Config) bool {
	if !c.ranged() {
		return false
	}
	lo, errLo := strconv.ParseFloat(c.Minimum, 64)
	hi, errHi := strconv.ParseFloat(c.Maximum, 64)
	return errLo == nil && errHi == nil && lo > hi
}
