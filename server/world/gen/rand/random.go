// Package rand implements the deterministic random number source used
// throughout world generation. Unlike math/rand, the sequence produced for a
// seed is part of the generator's compatibility contract: chunks generated
// twice from the same seed must be bit-identical.
package rand

const (
	multiplier = 0x5deece66d
	increment  = 0xb
	mask       = (1 << 48) - 1
)

// Random is a 48-bit linear congruential generator. It is not safe for
// concurrent use; each chunk generation task owns its own seeded instance.
type Random struct {
	state int64
}

// NewRandom creates a Random seeded with the seed passed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed reseeds the generator, restarting its sequence.
func (r *Random) SetSeed(seed int64) {
	r.state = (seed ^ multiplier) & mask
}

func (r *Random) next(bits uint) int32 {
	r.state = (r.state*multiplier + increment) & mask
	return int32(r.state >> (48 - bits))
}

// Int31 returns a non-negative pseudo-random 31-bit integer.
func (r *Random) Int31() int32 {
	return r.next(31)
}

// Int31n returns a non-negative pseudo-random integer in [0, n). It panics if
// n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: Int31n called with non-positive n")
	}
	if n&(n-1) == 0 {
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		v := bits % n
		if bits-v+(n-1) >= 0 {
			return v
		}
	}
}

// Range returns a pseudo-random integer in the inclusive range [min, max].
func (r *Random) Range(min, max int32) int32 {
	return min + r.Int31n(max-min+1)
}

// Int63 returns a pseudo-random 63-bit integer.
func (r *Random) Int63() int64 {
	return int64(r.next(32))<<32 + int64(r.next(32))
}

// Float64 returns a pseudo-random float in [0.0, 1.0).
func (r *Random) Float64() float64 {
	return float64(int64(r.next(26))<<27+int64(r.next(27))) / (1 << 53)
}
