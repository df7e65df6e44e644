// Package report writes generated strings as plain-text sections.
//
// A section is a blank line, the strategy name, a blank line, then one string per line.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer fans sections out to every destination it was created with.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer writing to all of ws.
func NewWriter(ws ...io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(io.MultiWriter(ws...))}
}

// Settings writes the run parameters header.
func (w *Writer) Settings(length, count int, output string) error {
	_, err := fmt.Fprintf(w.bw, "length : %d\nnumber of : %d\noutput filename : %s\n", length, count, output)

	return errors.Wrap(err, "write settings")
}

// Header starts the section of strategy name. Its strings follow through Line.
func (w *Writer) Header(name string) error {
	_, err := fmt.Fprintf(w.bw, "\n%s\n\n", name)

	return errors.Wrapf(err, "write %s header", name)
}

// Section writes one strategy section and flushes it.
func (w *Writer) Section(name string, lines []string) error {
	if err := w.Header(name); err != nil {
		return err
	}

	for _, line := range lines {
		if err := w.Line(line); err != nil {
			return errors.Wrap(err, name)
		}
	}

	return w.Flush()
}

// Line writes a single line.
func (w *Writer) Line(s string) error {
	_, err := fmt.Fprintln(w.bw, s)

	return errors.Wrap(err, "write line")
}

// Flush writes any buffered data.
func (w *Writer) Flush() error {
	return errors.Wrap(w.bw.Flush(), "flush report")
}
