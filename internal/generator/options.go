package generator

import (
	"github.com/guardiancrow/randomstring/internal/entropy"
)

// Option configures the strategies built by New and All.
type Option func(*options)

type options struct {
	seed     entropy.SeedFunc
	hardware []entropy.HardwareOption
	openOS   func() (*entropy.OsRng, error)
}

func newOptions(opts ...Option) options {
	o := options{
		seed:   entropy.OSSeed,
		openOS: entropy.OpenOS,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSeed fixes the seed of the xorshift and std-random strategies.
func WithSeed(seed uint64) Option {
	return WithSeedFunc(entropy.FixedSeed(seed))
}

// WithSeedFunc sets where the xorshift and std-random strategies take their seed from.
func WithSeedFunc(seed entropy.SeedFunc) Option {
	return func(o *options) {
		if seed != nil {
			o.seed = seed
		}
	}
}

// WithHardwareOptions passes options to every HardwareRng the hardware strategy creates.
func WithHardwareOptions(opts ...entropy.HardwareOption) Option {
	return func(o *options) {
		o.hardware = append(o.hardware, opts...)
	}
}

// WithOSOpener replaces how std-my-random acquires the OS random device.
func WithOSOpener(open func() (*entropy.OsRng, error)) Option {
	return func(o *options) {
		if open != nil {
			o.openOS = open
		}
	}
}
