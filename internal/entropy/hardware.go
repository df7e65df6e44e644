package entropy

import (
	"github.com/pkg/errors"
)

// DefaultRetries is how many times a failed RDRAND is retried before giving up.
const DefaultRetries = 10

// HardwareOption configures a HardwareRng.
type HardwareOption func(*HardwareRng)

// WithRetries sets how many times to retry the instruction after the initial attempt.
// Negative values are ignored.
func WithRetries(n int) HardwareOption {
	return func(h *HardwareRng) {
		if n >= 0 {
			h.retries = n
		}
	}
}

// WithProbe replaces the CPU feature check.
func WithProbe(probe func() bool) HardwareOption {
	return func(h *HardwareRng) {
		if probe != nil {
			h.probe = probe
		}
	}
}

// WithInstruction replaces the hardware instruction. step reports false when no value was ready.
func WithInstruction(step func() (uint32, bool)) HardwareOption {
	return func(h *HardwareRng) {
		if step != nil {
			h.step = step
		}
	}
}

// HardwareRng draws values from the CPU random number instruction.
type HardwareRng struct {
	retries int
	probe   func() bool
	step    func() (uint32, bool)
}

// NewHardware returns a HardwareRng using RDRAND where the platform has it.
func NewHardware(opts ...HardwareOption) *HardwareRng {
	h := &HardwareRng{
		retries: DefaultRetries,
		probe:   hasRDRAND,
		step:    rdrand32,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Probe reports whether the instruction is usable on this CPU.
func (h *HardwareRng) Probe() bool {
	return h.probe()
}

// Uint32 returns one hardware random value.
// It never runs the instruction when Probe is false.
func (h *HardwareRng) Uint32() (uint32, error) {
	if !h.Probe() {
		return 0, ErrSourceUnavailable
	}

	for attempt := 0; attempt <= h.retries; attempt++ {
		if v, ok := h.step(); ok {
			return v, nil
		}
	}

	return 0, errors.Wrapf(ErrRetriesExhausted, "rdrand failed after %d attempts", h.retries+1)
}
