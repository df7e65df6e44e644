// Package mixer implements the xorshift32 diffusion step applied to raw entropy.
//
// The transform only scrambles bits; it adds no entropy beyond what the wrapped source has.
package mixer

import (
	"github.com/guardiancrow/randomstring/internal/entropy"
)

// Mix applies the 13/17/15 shift-xor transform.
func Mix(x uint32) uint32 {
	x ^= x << 13 //nolint:mnd
	x ^= x >> 17 //nolint:mnd
	x ^= x << 15 //nolint:mnd

	return x
}

type mixed struct {
	src entropy.Source
}

// Wrap returns a Source that passes every value drawn from src through Mix.
func Wrap(src entropy.Source) entropy.Source {
	return mixed{src: src}
}

func (m mixed) Uint32() (uint32, error) {
	v, err := m.src.Uint32()
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return Mix(v), nil
}
