//go:build amd64

package entropy

import (
	"golang.org/x/sys/cpu"
)

func hasRDRAND() bool {
	return cpu.X86.HasRDRAND
}

// rdrand32 executes RDRAND once. ok is the carry flag.
func rdrand32() (v uint32, ok bool)
