package alphabet

import (
	"github.com/guardiancrow/randomstring/internal/entropy"
)

const (
	// Alphabet is the base64 character table. Index domain is [0,Size).
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Size is the number of characters in Alphabet.
	Size = len(Alphabet)

	// Reach is how many leading characters the generation strategies can produce.
	// '+' and '/' sit past it and never appear in generated strings.
	Reach = 62
)

// Mapper turns draws from a Source into one alphabet character.
type Mapper interface {
	Map(src entropy.Source) (byte, error)
}

// Modulo maps a single draw to Alphabet[raw % N].
// N outside [1,Size], including the zero value, means Size.
// For N=64 there is no modulo bias because 64 divides 2^32.
type Modulo struct {
	N uint32
}

// Map implements Mapper.
func (m Modulo) Map(src entropy.Source) (byte, error) {
	raw, err := src.Uint32()
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	n := m.N
	if n == 0 || n > uint32(Size) {
		n = uint32(Size)
	}

	return Alphabet[raw%n], nil
}

// Uniform samples an index uniformly from the inclusive range [Lo,Hi] and maps it.
// Draws falling in the incomplete top bucket of the 32-bit range are rejected.
type Uniform struct {
	Lo uint32
	Hi uint32
}

// uint32Range is the number of distinct 32-bit values (2^32).
const uint32Range = 1 << 32

// Map implements Mapper.
func (u Uniform) Map(src entropy.Source) (byte, error) {
	span := uint64(u.Hi-u.Lo) + 1
	limit := uint32Range - uint32Range%span

	for {
		raw, err := src.Uint32()
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		if uint64(raw) < limit {
			return Alphabet[u.Lo+uint32(uint64(raw)%span)], nil //nolint:gosec
		}
	}
}
