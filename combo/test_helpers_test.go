package combo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazycomb/combo"
	"github.com/katalvlaran/lazycomb/lazy"
	"github.com/katalvlaran/lazycomb/source"
)

// letters returns a source of n single-letter strings starting at "A".
func letters(n int) source.Slice[string] {
	out := make(source.Slice[string], n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}

	return out
}

// join renders every tuple as a compact string, e.g. [A C] -> "AC".
func join(tuples [][]string) []string {
	out := make([]string, len(tuples))
	for i, t := range tuples {
		out[i] = strings.Join(t, "")
	}

	return out
}

// drain collects every remaining value of s and requires success.
func drain[T any](t *testing.T, s lazy.Sequence[T]) []T {
	t.Helper()
	out, err := lazy.Collect(s)
	require.NoError(t, err)

	return out
}

// skip consumes c values of s.
func skip[T any](t *testing.T, s lazy.Sequence[T], c int) {
	t.Helper()
	for i := 0; i < c; i++ {
		_, err := s.Next()
		require.NoError(t, err)
	}
}

// indexGen builds a Generator over raw index tuples.
func indexGen(t *testing.T, n, r int) *combo.Generator[int] {
	t.Helper()
	g, err := combo.New(source.Indices(n), r)
	require.NoError(t, err)

	return g
}

// remaining returns the exact estimate of s, failing on Unbounded.
func remaining[T any](t *testing.T, s lazy.Sequence[T]) uint64 {
	t.Helper()
	v, ok := s.EstimateRemaining().Value()
	require.True(t, ok, "estimate must be exact here")

	return v
}
