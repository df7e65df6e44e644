package generator

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardiancrow/randomstring/internal/alphabet"
	"github.com/guardiancrow/randomstring/internal/entropy"
)

const reachable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

type trackingCloser struct {
	io.Reader
	closed int
}

func (c *trackingCloser) Close() error {
	c.closed++
	return nil
}

// fakeHardware makes the hardware strategy deterministic on every CPU.
func fakeHardware(values ...uint32) Option {
	var i atomic.Uint64

	return WithHardwareOptions(
		entropy.WithProbe(func() bool { return true }),
		entropy.WithInstruction(func() (uint32, bool) {
			n := i.Add(1) - 1

			return values[n%uint64(len(values))], true
		}),
	)
}

func testOptions() []Option {
	return []Option{WithSeed(42), fakeHardware(7, 61, 62, 1000)}
}

func assertReachable(t *testing.T, s string) {
	t.Helper()

	for i, c := range s {
		assert.True(t, strings.ContainsRune(reachable, c), "invalid character %c at position %d", c, i)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"xorshift", "hardware", "std-random", "std-my-random"}, Names())

	var names []string
	for _, s := range All() {
		names = append(names, s.Name())
	}

	assert.Equal(t, Names(), names)
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := New("rdseed")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestGenerate_Lengths(t *testing.T) {
	for _, s := range All(testOptions()...) {
		t.Run(s.Name(), func(t *testing.T) {
			for _, length := range []int{0, 1, 10, 32, 255, 256} {
				str, err := s.Generate(length)
				require.NoError(t, err)
				assert.Len(t, str, length)
				assertReachable(t, str)
			}
		})
	}
}

func TestGenerate_NonPositiveLength(t *testing.T) {
	opened := 0
	opts := append(testOptions(), WithOSOpener(func() (*entropy.OsRng, error) {
		opened++
		return entropy.OpenOS()
	}))

	for _, s := range All(opts...) {
		for _, length := range []int{0, -1} {
			str, err := s.Generate(length)
			require.NoError(t, err)
			assert.Empty(t, str)
		}
	}

	assert.Zero(t, opened, "no source may be acquired for an empty string")
}

func TestGenerate_NeverEmitsSymbols(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name(), func(t *testing.T) {
			for range 20 {
				str, err := s.Generate(256)
				require.NoError(t, err)
				assert.NotContains(t, str, "+")
				assert.NotContains(t, str, "/")
			}
		})
	}
}

func TestSeededStrategies_Reproducible(t *testing.T) {
	for _, name := range []string{NameXorShift, NameStdRandom} {
		t.Run(name, func(t *testing.T) {
			a, err := New(name, WithSeed(1234))
			require.NoError(t, err)

			b, err := New(name, WithSeed(1234))
			require.NoError(t, err)

			c, err := New(name, WithSeed(4321))
			require.NoError(t, err)

			first, err := a.Generate(64)
			require.NoError(t, err)

			again, err := a.Generate(64)
			require.NoError(t, err)

			other, err := b.Generate(64)
			require.NoError(t, err)

			different, err := c.Generate(64)
			require.NoError(t, err)

			assert.Equal(t, first, again, "each call re-seeds")
			assert.Equal(t, first, other)
			assert.NotEqual(t, first, different)
		})
	}
}

func TestXorShift_DiffersFromStdRandom(t *testing.T) {
	x, err := New(NameXorShift, WithSeed(7))
	require.NoError(t, err)

	s, err := New(NameStdRandom, WithSeed(7))
	require.NoError(t, err)

	a, err := x.Generate(32)
	require.NoError(t, err)

	b, err := s.Generate(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSeedFuncError(t *testing.T) {
	boom := errors.New("no seed") //nolint:goerr113
	s, err := New(NameStdRandom, WithSeedFunc(func() (uint64, error) { return 0, boom }))
	require.NoError(t, err)

	_, err = s.Generate(8)
	require.ErrorIs(t, err, boom)
}

func TestHardware(t *testing.T) {
	t.Run("modulo 62 mapping", func(t *testing.T) {
		s, err := New(NameHardware, fakeHardware(0, 61, 62, 63))
		require.NoError(t, err)

		str, err := s.Generate(4)
		require.NoError(t, err)
		assert.Equal(t, "A9AB", str)
	})

	t.Run("unavailable returns empty without blocking", func(t *testing.T) {
		calls := 0
		s, err := New(NameHardware, WithHardwareOptions(
			entropy.WithProbe(func() bool { return false }),
			entropy.WithInstruction(func() (uint32, bool) {
				calls++
				return 0, true
			}),
		))
		require.NoError(t, err)

		str, err := s.Generate(32)
		require.NoError(t, err)
		assert.Empty(t, str)
		assert.Zero(t, calls)
	})

	t.Run("retries exhausted returns empty", func(t *testing.T) {
		calls := 0
		s, err := New(NameHardware, WithHardwareOptions(
			entropy.WithRetries(2),
			entropy.WithProbe(func() bool { return true }),
			entropy.WithInstruction(func() (uint32, bool) {
				calls++
				return 0, calls < 3
			}),
		))
		require.NoError(t, err)

		str, err := s.Generate(8)
		require.NoError(t, err)
		assert.Empty(t, str)
		assert.Equal(t, 5, calls, "two good draws, then three failed attempts")
	})

	t.Run("native", func(t *testing.T) {
		s, err := New(NameHardware)
		require.NoError(t, err)

		str, err := s.Generate(16)
		require.NoError(t, err)

		if entropy.NewHardware().Probe() {
			assert.Len(t, str, 16)
		} else {
			assert.Empty(t, str)
		}
	})
}

func TestStdMyRandom(t *testing.T) {
	t.Run("seeds from device and closes it", func(t *testing.T) {
		rc := &trackingCloser{Reader: bytes.NewReader([]byte{1, 2, 3, 4})}
		s, err := New(NameStdMyRandom, WithOSOpener(func() (*entropy.OsRng, error) {
			return entropy.NewOS(rc), nil
		}))
		require.NoError(t, err)

		str, err := s.Generate(20)
		require.NoError(t, err)
		assert.Len(t, str, 20)
		assert.Equal(t, 1, rc.closed)

		// the same device seed yields the same string
		want := make([]byte, 20)
		prng := entropy.NewSeeded(0x04030201)
		for i := range want {
			c, err := alphabet.Uniform{Lo: 0, Hi: alphabet.Reach - 1}.Map(prng)
			require.NoError(t, err)
			want[i] = c
		}

		assert.Equal(t, string(want), str)
	})

	t.Run("open failure is fatal", func(t *testing.T) {
		s, err := New(NameStdMyRandom, WithOSOpener(func() (*entropy.OsRng, error) {
			return nil, entropy.ErrAcquisition
		}))
		require.NoError(t, err)

		str, err := s.Generate(20)
		require.ErrorIs(t, err, entropy.ErrAcquisition)
		assert.Empty(t, str)
	})

	t.Run("read failure closes device", func(t *testing.T) {
		rc := &trackingCloser{Reader: bytes.NewReader(nil)}
		s, err := New(NameStdMyRandom, WithOSOpener(func() (*entropy.OsRng, error) {
			return entropy.NewOS(rc), nil
		}))
		require.NoError(t, err)

		_, err = s.Generate(20)
		require.ErrorIs(t, err, entropy.ErrAcquisition)
		assert.Equal(t, 1, rc.closed)
	})
}

func TestGenerateBatch(t *testing.T) {
	s, err := New(NameStdRandom, WithSeed(99))
	require.NoError(t, err)

	first, err := GenerateBatch(context.Background(), s, 10, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	for _, str := range first {
		assert.Len(t, str, 10)
		assertReachable(t, str)
	}

	again, err := GenerateBatch(context.Background(), s, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	empty, err := GenerateBatch(context.Background(), s, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := New(NameStdRandom)
	require.NoError(t, err)

	out, err := GenerateBatch(ctx, s, 10, 5)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}

func TestGenerateBatch_HugeCount(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := New(NameStdRandom)
	require.NoError(t, err)

	var out []string

	require.NotPanics(t, func() {
		out, err = GenerateBatch(ctx, s, 0, 1<<62)
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}

func TestStream(t *testing.T) {
	s, err := New(NameXorShift, WithSeed(3))
	require.NoError(t, err)

	var got []string

	err = Stream(context.Background(), s, 8, 4, func(str string) error {
		got = append(got, str)

		return nil
	})
	require.NoError(t, err)

	want, err := GenerateBatch(context.Background(), s, 8, 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	stop := errors.New("stop") //nolint:goerr113
	calls := 0

	err = Stream(context.Background(), s, 8, 1<<62, func(string) error {
		calls++
		if calls == 2 {
			return stop
		}

		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)

	require.NoError(t, Stream(context.Background(), s, 8, -1, func(string) error {
		t.Fatal("negative count emits nothing")

		return nil
	}))
}

func TestConcurrentGenerate(t *testing.T) {
	strategies := All(testOptions()...)
	errs := make(chan error, len(strategies)*10)
	done := make(chan struct{})

	for _, s := range strategies {
		for range 10 {
			go func() {
				_, err := s.Generate(64)
				errs <- err
			}()
		}
	}

	go func() {
		for range len(strategies) * 10 {
			assert.NoError(t, <-errs)
		}
		close(done)
	}()

	<-done
}
