package entropy

import (
	"encoding/binary"
	"fmt"
	"io"
)

// OsRng reads from a handle on the operating system random device.
// The handle is held from OpenOS until Close.
type OsRng struct {
	rc  io.ReadCloser
	buf [4]byte
}

// OpenOS acquires the platform random device.
func OpenOS() (*OsRng, error) {
	rc, err := openDevice()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	return NewOS(rc), nil
}

// NewOS wraps an already acquired handle. The OsRng takes ownership of rc.
func NewOS(rc io.ReadCloser) *OsRng {
	return &OsRng{rc: rc}
}

// Uint32 reads one little-endian value from the device.
func (o *OsRng) Uint32() (uint32, error) {
	if _, err := io.ReadFull(o.rc, o.buf[:]); err != nil {
		return 0, fmt.Errorf("%w: read: %w", ErrAcquisition, err)
	}

	return binary.LittleEndian.Uint32(o.buf[:]), nil
}

// Close releases the device handle.
func (o *OsRng) Close() error {
	return o.rc.Close() //nolint:wrapcheck
}
