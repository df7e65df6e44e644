package entropy

import (
	"errors"
)

var (
	// ErrSourceUnavailable is returned when the hardware random instruction is not supported by this CPU.
	ErrSourceUnavailable = errors.New("hardware random source not available")

	// ErrRetriesExhausted is returned when the hardware instruction did not deliver a value within the retry bound.
	ErrRetriesExhausted = errors.New("hardware random source retries exhausted")

	// ErrAcquisition is returned when the operating system random device can not be opened or read.
	ErrAcquisition = errors.New("os random source acquisition failed")
)
