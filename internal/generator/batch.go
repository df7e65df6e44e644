package generator

import (
	"context"

	"github.com/pkg/errors"
)

// Stream produces count strings of length with s and hands each one to emit as soon as it
// is generated. It stops at the first error from s or emit, or when ctx is done.
func Stream(ctx context.Context, s Strategy, length, count int, emit func(string) error) error {
	for range max(count, 0) {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s: batch interrupted", s.Name())
		}

		str, err := s.Generate(length)
		if err != nil {
			return err
		}

		if err := emit(str); err != nil {
			return err
		}
	}

	return nil
}

// GenerateBatch collects count strings of length with s.
// It stops at the first error or when ctx is done and returns what was generated so far.
// The slice grows as strings arrive; count is not trusted as an allocation size.
func GenerateBatch(ctx context.Context, s Strategy, length, count int) ([]string, error) {
	var out []string

	err := Stream(ctx, s, length, count, func(str string) error {
		out = append(out, str)

		return nil
	})

	return out, err
}
