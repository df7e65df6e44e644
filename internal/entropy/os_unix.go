//go:build unix

package entropy

import (
	"io"
	"os"
)

const devicePath = "/dev/urandom"

func openDevice() (io.ReadCloser, error) {
	return os.Open(devicePath) //nolint:wrapcheck
}
