package generator

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/guardiancrow/randomstring/internal/alphabet"
	"github.com/guardiancrow/randomstring/internal/entropy"
	"github.com/guardiancrow/randomstring/internal/metrics"
)

// Strategy names, in the order All returns them.
const (
	NameXorShift    = "xorshift"
	NameHardware    = "hardware"
	NameStdRandom   = "std-random"
	NameStdMyRandom = "std-my-random"
)

// Strategy produces random strings over the alphabet.
// Every Generate call acquires and releases its own entropy source,
// so a Strategy is safe for concurrent use.
type Strategy interface {
	Name() string
	Generate(length int) (string, error)
}

// acquireFunc returns the entropy source for one Generate call and the func releasing it.
type acquireFunc func() (entropy.Source, func() error, error)

type strategy struct {
	name    string
	acquire acquireFunc
	mapper  alphabet.Mapper
}

// Name implements Strategy.
func (s *strategy) Name() string {
	return s.name
}

// Generate implements Strategy. length <= 0 yields "" without touching any source.
func (s *strategy) Generate(length int) (str string, err error) {
	if length <= 0 {
		return "", nil
	}

	src, release, err := s.acquire()
	if err != nil {
		return s.fail(err)
	}

	defer func() {
		if cerr := release(); cerr != nil && err == nil {
			str, err = "", errors.Wrapf(cerr, "%s: release entropy source", s.name)
		}
	}()

	buf := make([]byte, length)

	for i := range buf {
		c, err := s.mapper.Map(src)
		if err != nil {
			return s.fail(err)
		}

		buf[i] = c
	}

	metrics.Strings.WithLabelValues(s.name, metrics.ResultOK).Inc()
	metrics.Characters.WithLabelValues(s.name).Add(float64(length))

	return string(buf), nil
}

// fail turns a missing hardware source into an empty result and wraps everything else.
func (s *strategy) fail(err error) (string, error) {
	if errors.Is(err, entropy.ErrSourceUnavailable) || errors.Is(err, entropy.ErrRetriesExhausted) {
		log.Debug().Err(err).Str("strategy", s.name).Msg("entropy source unavailable, returning empty string")
		metrics.Strings.WithLabelValues(s.name, metrics.ResultEmpty).Inc()

		return "", nil
	}

	metrics.Strings.WithLabelValues(s.name, metrics.ResultError).Inc()

	return "", errors.Wrap(err, s.name)
}

func noRelease() error {
	return nil
}

// seeded acquires a fresh Mersenne Twister from seed, optionally behind the xorshift mixer.
func seeded(name string, seed entropy.SeedFunc, wrap func(entropy.Source) entropy.Source) acquireFunc {
	return func() (entropy.Source, func() error, error) {
		s, err := seed()
		if err != nil {
			return nil, nil, errors.Wrap(err, "seed")
		}

		log.Trace().Str("strategy", name).Uint64("seed", s).Msg("seeded prng")

		var src entropy.Source = entropy.NewSeeded(s)
		if wrap != nil {
			src = wrap(src)
		}

		return src, noRelease, nil
	}
}
