package alphabet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed list of values.
type seqSource struct {
	values []uint32
	next   int
}

func (s *seqSource) Uint32() (uint32, error) {
	v := s.values[s.next%len(s.values)]
	s.next++

	return v, nil
}

type errSource struct{ err error }

func (e errSource) Uint32() (uint32, error) { return 0, e.err }

func TestAlphabet(t *testing.T) {
	assert.Equal(t, 64, Size)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", Alphabet[:Reach])
	assert.Equal(t, "+/", Alphabet[Reach:])

	seen := make(map[rune]bool)
	for _, c := range Alphabet {
		assert.False(t, seen[c], "duplicate character %c", c)
		seen[c] = true
	}
}

func TestModulo(t *testing.T) {
	testCases := []struct {
		name string
		n    uint32
		raw  uint32
		want byte
	}{
		{name: "62 first", n: 62, raw: 0, want: 'A'},
		{name: "62 last reachable", n: 62, raw: 61, want: '9'},
		{name: "62 wraps", n: 62, raw: 62, want: 'A'},
		{name: "62 wraps past 63", n: 62, raw: 63, want: 'B'},
		{name: "64 plus", n: 64, raw: 62, want: '+'},
		{name: "64 slash", n: 64, raw: 63, want: '/'},
		{name: "64 max uint32", n: 64, raw: 0xffffffff, want: '/'},
		{name: "zero value uses full alphabet", n: 0, raw: 63, want: '/'},
		{name: "oversized n uses full alphabet", n: 1000, raw: 999, want: 'n'},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Modulo{N: tc.n}.Map(&seqSource{values: []uint32{tc.raw}})
			require.NoError(t, err)
			assert.Equal(t, string(tc.want), string(c))
		})
	}
}

// 2^32 is a multiple of 64, so a full-range modulo 64 mapping has no bias.
// Against 62 four residues are hit one extra time.
func TestModulo_BiasArithmetic(t *testing.T) {
	assert.Zero(t, uint64(uint32Range)%64)
	assert.Equal(t, uint64(4), uint64(uint32Range)%62)
}

func TestUniform(t *testing.T) {
	u := Uniform{Lo: 0, Hi: Reach - 1}

	t.Run("maps in range", func(t *testing.T) {
		c, err := u.Map(&seqSource{values: []uint32{63}})
		require.NoError(t, err)
		assert.Equal(t, byte('B'), c)
	})

	t.Run("rejects top bucket", func(t *testing.T) {
		src := &seqSource{values: []uint32{0xffffffff, 0xfffffffc, 61}}
		c, err := u.Map(src)
		require.NoError(t, err)
		assert.Equal(t, byte('9'), c)
		assert.Equal(t, 3, src.next)
	})

	t.Run("accepts last value below limit", func(t *testing.T) {
		c, err := u.Map(&seqSource{values: []uint32{0xfffffffb}})
		require.NoError(t, err)
		assert.Equal(t, Alphabet[0xfffffffb%62], c)
	})

	t.Run("offset range", func(t *testing.T) {
		c, err := Uniform{Lo: 62, Hi: 63}.Map(&seqSource{values: []uint32{1}})
		require.NoError(t, err)
		assert.Equal(t, byte('/'), c)
	})

	t.Run("propagates source error", func(t *testing.T) {
		boom := errors.New("boom") //nolint:goerr113
		_, err := u.Map(errSource{err: boom})
		require.ErrorIs(t, err, boom)
	})
}

func TestMappers_NeverReachSymbols(t *testing.T) {
	values := make([]uint32, 0, 512)
	for i := range uint32(256) {
		values = append(values, i, 0xffffff00+i)
	}

	for _, m := range []Mapper{Modulo{N: Reach}, Uniform{Lo: 0, Hi: Reach - 1}} {
		src := &seqSource{values: values}
		for range values {
			c, err := m.Map(src)
			require.NoError(t, err)
			assert.NotContains(t, "+/", string(c))
		}
	}
}
