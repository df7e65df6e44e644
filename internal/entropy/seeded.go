package entropy

import (
	"github.com/seehuhn/mt19937"
)

// SeededPrng is a 64-bit Mersenne Twister seeded once at construction.
// Output is a pure function of the seed. It is NOT cryptographically secure.
type SeededPrng struct {
	mt   *mt19937.MT19937
	seed uint64
}

// NewSeeded returns a SeededPrng initialised with seed.
func NewSeeded(seed uint64) *SeededPrng {
	mt := mt19937.New()
	mt.Seed(int64(seed)) //nolint:gosec // bit pattern is what matters

	return &SeededPrng{mt: mt, seed: seed}
}

// Seed returns the seed the generator was built with.
func (p *SeededPrng) Seed() uint64 {
	return p.seed
}

// Uint32 returns the upper half of the next 64-bit output. It never fails.
func (p *SeededPrng) Uint32() (uint32, error) {
	return uint32(p.mt.Uint64() >> 32), nil //nolint:mnd
}
