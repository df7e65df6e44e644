package entropy

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Source produces raw unsigned 32-bit values on demand.
type Source interface {
	Uint32() (uint32, error)
}

// SeedFunc supplies the seed for a SeededPrng.
type SeedFunc func() (uint64, error)

// OSSeed draws a seed from crypto/rand.
func OSSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// FixedSeed returns a SeedFunc that always yields seed.
func FixedSeed(seed uint64) SeedFunc {
	return func() (uint64, error) {
		return seed, nil
	}
}
