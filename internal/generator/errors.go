package generator

import (
	"errors"
)

// ErrUnknownStrategy is returned by New for a name that is not one of Names().
var ErrUnknownStrategy = errors.New("unknown strategy")
