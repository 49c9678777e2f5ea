package perm_test

import (
	"slices"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lazycomb/count"
	"github.com/katalvlaran/lazycomb/lazy"
	"github.com/katalvlaran/lazycomb/perm"
	"github.com/katalvlaran/lazycomb/source"
)

func newGen[T any](t *testing.T, src source.Source[T]) *perm.Generator[T] {
	t.Helper()
	g, err := perm.New(src)
	require.NoError(t, err)

	return g
}

func drain[T any](t *testing.T, s lazy.Sequence[T]) []T {
	t.Helper()
	out, err := lazy.Collect(s)
	require.NoError(t, err)

	return out
}

// TestGenerator_OneTwoThree pins the reference lexicographic order.
func TestGenerator_OneTwoThree(t *testing.T) {
	got := drain[[]int](t, newGen[int](t, source.Of(1, 2, 3)))
	want := [][]int{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	assert.Equal(t, want, got)
}

// TestGenerator_Nil rejects a missing source.
func TestGenerator_Nil(t *testing.T) {
	g, err := perm.New[string](nil)
	assert.ErrorIs(t, err, lazy.ErrInvalidArgument)
	assert.Nil(t, g)
}

// TestGenerator_Empty yields a single empty permutation, 0! = 1.
func TestGenerator_Empty(t *testing.T) {
	g := newGen[int](t, source.Indices(0))
	assert.Equal(t, uint64(1), mustExact(t, g.EstimateRemaining()))
	assert.Equal(t, [][]int{{}}, drain[[]int](t, g))
	assert.Equal(t, lazy.Exhausted, g.State())
}

// TestGenerator_Bijections checks n! distinct bijections in strictly increasing
// lexicographic order, and agreement with gonum's enumeration as a set.
func TestGenerator_Bijections(t *testing.T) {
	for n := 1; n <= 7; n++ {
		got := drain[[]int](t, newGen(t, source.Indices(n)))
		require.Len(t, got, int(mustExact(t, count.Factorial(n))), "n=%d", n)

		for i, p := range got {
			sorted := slices.Clone(p)
			slices.Sort(sorted)
			for j := range sorted {
				require.Equal(t, j, sorted[j], "%v is not a bijection of 0..%d", p, n-1)
			}
			if i > 0 {
				require.Equal(t, -1, slices.Compare(got[i-1], p), "%v must precede %v", got[i-1], p)
			}
		}

		oracle := combin.Permutations(n, n)
		slices.SortFunc(oracle, slices.Compare[[]int])
		if diff := cmp.Diff(oracle, got); diff != "" {
			t.Fatalf("n=%d differs from gonum (-want +got):\n%s", n, diff)
		}
	}
}

// TestGenerator_NeverSplits preserves the sequential-only contract.
func TestGenerator_NeverSplits(t *testing.T) {
	g := newGen[int](t, source.Indices(6))
	sib, ok := g.TrySplit()
	assert.False(t, ok)
	assert.Nil(t, sib)

	_, err := g.Next()
	require.NoError(t, err)
	_, ok = g.TrySplit()
	assert.False(t, ok)

	parts := lazy.Partition[[]int](g, 4)
	assert.Len(t, parts, 1)
}

// TestGenerator_EstimateRemaining checks n! - produced and saturation.
func TestGenerator_EstimateRemaining(t *testing.T) {
	g := newGen[int](t, source.Indices(4))
	assert.Equal(t, uint64(24), mustExact(t, g.EstimateRemaining()))
	for i := 0; i < 5; i++ {
		_, err := g.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(19), mustExact(t, g.EstimateRemaining()))
	require.NoError(t, g.ForEachRemaining(func([]int) {}))
	assert.True(t, g.EstimateRemaining().IsZero())

	big := newGen[int](t, source.Indices(25))
	assert.True(t, big.EstimateRemaining().IsUnbounded())
	_, err := big.Next()
	require.NoError(t, err)
	assert.True(t, big.EstimateRemaining().IsUnbounded(), "Unbounded minus produced stays Unbounded")
}

// TestGenerator_ProtocolsAgree mixes pull and push consumption.
func TestGenerator_ProtocolsAgree(t *testing.T) {
	want := drain[[]string](t, newGen[string](t, source.Of("a", "b", "c", "d")))

	g := newGen[string](t, source.Of("a", "b", "c", "d"))
	var got [][]string
	for g.HasNext() {
		if len(got)%2 == 0 {
			v, err := g.Next()
			require.NoError(t, err)
			got = append(got, v)
			continue
		}
		ok, err := g.TryAdvance(func(v []string) { got = append(got, v) })
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, want, got)

	_, err := g.Next()
	assert.ErrorIs(t, err, lazy.ErrExhausted)
}

// TestGenerator_ConcurrentModification checks detection and stickiness.
func TestGenerator_ConcurrentModification(t *testing.T) {
	var lines []string
	log := funcr.New(func(_, args string) { lines = append(lines, args) }, funcr.Options{Verbosity: 1})

	l := source.NewList(1, 2, 3)
	g, err := perm.New(l, perm.WithLogger(log))
	require.NoError(t, err)
	_, err = g.Next()
	require.NoError(t, err)

	require.NoError(t, l.RemoveAt(0))
	_, err = g.Next()
	assert.ErrorIs(t, err, lazy.ErrConcurrentModification)
	assert.Equal(t, lazy.Failed, g.State())
	assert.True(t, g.HasNext())
	assert.ErrorIs(t, g.ForEachRemaining(func([]int) { t.Fatal("visitor called on failed generator") }), lazy.ErrConcurrentModification)
	assert.True(t, g.EstimateRemaining().IsZero())

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "source modified")
	assert.Contains(t, lines[0], `"snapshot"=3`)
	assert.Contains(t, lines[0], `"live"=2`)
}

func mustExact(t *testing.T, c count.Count) uint64 {
	t.Helper()
	v, ok := c.Value()
	require.True(t, ok)

	return v
}
