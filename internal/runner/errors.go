package runner

import (
	"errors"
)

var (
	// ErrOutputFile is returned if the output file can not be created or written.
	ErrOutputFile = errors.New("output file error")

	// ErrNoStrategies is returned if the config selects no strategy.
	ErrNoStrategies = errors.New("no strategy selected")
)
