package lazy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Transitions(t *testing.T) {
	g := NewGuard(3)
	assert.Equal(t, Fresh, g.State())
	assert.Equal(t, 3, g.Size())
	assert.False(t, g.Terminal())

	require.NoError(t, g.Enter(3))
	assert.Equal(t, Active, g.State())
	require.NoError(t, g.Enter(3))
	assert.Equal(t, Active, g.State())

	g.Exhaust()
	assert.Equal(t, Exhausted, g.State())
	assert.True(t, g.Terminal())
	assert.ErrorIs(t, g.Enter(3), ErrExhausted)
	// a modification after exhaustion is not looked at
	assert.ErrorIs(t, g.Enter(7), ErrExhausted)
	assert.Equal(t, Exhausted, g.State())
	assert.NoError(t, g.Err())
}

func TestGuard_FailureIsSticky(t *testing.T) {
	g := NewGuard(4)
	require.NoError(t, g.Enter(4))

	first := g.Enter(5)
	require.ErrorIs(t, first, ErrConcurrentModification)
	assert.Contains(t, first.Error(), "size changed from 4 to 5")
	assert.Equal(t, Failed, g.State())

	// restoring the size does not resume
	again := g.Enter(4)
	assert.Same(t, first, again)
	assert.Same(t, first, g.Err())

	g.Exhaust()
	assert.Equal(t, Failed, g.State(), "Exhaust must not mask a failure")
}

func TestGuard_Fork(t *testing.T) {
	g := NewGuard(2)
	require.NoError(t, g.Enter(2))
	sib := g.Fork()
	assert.Equal(t, Fresh, sib.State())
	assert.Equal(t, 2, sib.Size())

	// the sibling compares against the parent's snapshot
	assert.ErrorIs(t, sib.Enter(3), ErrConcurrentModification)
	assert.Equal(t, Active, g.State(), "siblings share no state")
}

func TestGuard_Fail(t *testing.T) {
	inner := errors.New("inner")

	g := NewGuard(1)
	assert.Same(t, inner, g.Fail(inner))
	assert.Equal(t, Failed, g.State())
	assert.Same(t, inner, g.Fail(errors.New("later")), "first failure wins")

	done := NewGuard(1)
	done.Exhaust()
	assert.ErrorIs(t, done.Fail(inner), ErrExhausted)
	assert.Equal(t, Exhausted, done.State())
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Fresh, "fresh"},
		{Active, "active"},
		{Exhausted, "exhausted"},
		{Failed, "failed"},
		{State(42), "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.s.String())
	}
}
