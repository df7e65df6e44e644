package config

import (
	"errors"
)

var (
	// ErrReadConfigFile is returned if the file given with --config can not be read.
	ErrReadConfigFile = errors.New("failed to read config file")

	// ErrInvalidSeed is returned if --seed is not an unsigned 64-bit integer.
	ErrInvalidSeed = errors.New("seed must be an unsigned 64-bit integer")

	// ErrInvalidConfig is returned if the assembled config fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)
