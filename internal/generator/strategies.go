package generator

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/guardiancrow/randomstring/internal/alphabet"
	"github.com/guardiancrow/randomstring/internal/entropy"
	"github.com/guardiancrow/randomstring/internal/mixer"
)

var (
	modulo62  = alphabet.Modulo{N: alphabet.Reach}
	uniform62 = alphabet.Uniform{Lo: 0, Hi: alphabet.Reach - 1}
)

func newXorShift(o options) Strategy {
	return &strategy{
		name:    NameXorShift,
		acquire: seeded(NameXorShift, o.seed, mixer.Wrap),
		mapper:  modulo62,
	}
}

func newHardware(o options) Strategy {
	return &strategy{
		name: NameHardware,
		acquire: func() (entropy.Source, func() error, error) {
			h := entropy.NewHardware(o.hardware...)
			if !h.Probe() {
				return nil, nil, entropy.ErrSourceUnavailable
			}

			return h, noRelease, nil
		},
		mapper: modulo62,
	}
}

func newStdRandom(o options) Strategy {
	return &strategy{
		name:    NameStdRandom,
		acquire: seeded(NameStdRandom, o.seed, nil),
		mapper:  uniform62,
	}
}

// newStdMyRandom seeds from the OS device and keeps the handle open until the string is done.
func newStdMyRandom(o options) Strategy {
	return &strategy{
		name: NameStdMyRandom,
		acquire: func() (entropy.Source, func() error, error) {
			dev, err := o.openOS()
			if err != nil {
				return nil, nil, err
			}

			seed, err := dev.Uint32()
			if err != nil {
				if cerr := dev.Close(); cerr != nil {
					log.Error().Err(cerr).Msg("can't close os random device")
				}

				return nil, nil, err
			}

			log.Trace().Str("strategy", NameStdMyRandom).Uint32("seed", seed).Msg("seeded prng")

			return entropy.NewSeeded(uint64(seed)), dev.Close, nil
		},
		mapper: uniform62,
	}
}

var constructors = map[string]func(options) Strategy{ //nolint:gochecknoglobals
	NameXorShift:    newXorShift,
	NameHardware:    newHardware,
	NameStdRandom:   newStdRandom,
	NameStdMyRandom: newStdMyRandom,
}

// Names returns the strategy names in their fixed run order.
func Names() []string {
	return []string{NameXorShift, NameHardware, NameStdRandom, NameStdMyRandom}
}

// New returns the strategy called name.
func New(name string, opts ...Option) (Strategy, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownStrategy, name)
	}

	return c(newOptions(opts...)), nil
}

// All returns every strategy in the order of Names.
func All(opts ...Option) []Strategy {
	o := newOptions(opts...)
	all := make([]Strategy, 0, len(constructors))

	for _, name := range Names() {
		all = append(all, constructors[name](o))
	}

	return all
}
