package rng

var _ Algorithm = &Xorshift128Plus{}

// Xorshift128Plus is a shift/xor generator with 128 bits of state
type Xorshift128Plus struct {
	state [2]uint64
}

// NewXorshift128PlusAlgorithm returns a Xorshift128Plus seeded with seed
func NewXorshift128PlusAlgorithm(seed uint64) *Xorshift128Plus {
	x := &Xorshift128Plus{}
	x.Seed(seed)
	return x
}

func (x *Xorshift128Plus) Next() uint64 {
	s := x.state[0] ^ (x.state[0] << 23)
	y := x.state[1]
	x.state[0] = y
	x.state[1] = s ^ y ^ (s >> 18) ^ (y >> 5)
	return x.state[1] + y
}

func (x *Xorshift128Plus) Seed(seed uint64) {
	x.state = expandSeed(seed)
}
