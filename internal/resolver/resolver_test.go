package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	c := New()

	first := c.Register("svc", func(*Container) (any, error) { return "first", nil }, false)
	second := c.Register("svc", func(*Container) (any, error) { return "second", nil }, false)

	require.True(t, first)
	require.False(t, second)
	require.True(t, c.IsRegistered("svc"))

	got, err := c.Resolve("svc")
	require.NoError(t, err)
	require.Equal(t, "first", got, "second registration must not overwrite the first")
}

func TestResolveNonSingletonInvokesFactoryPerCall(t *testing.T) {
	c := New()

	calls := 0
	c.Register("counter", func(*Container) (any, error) {
		calls++
		return calls, nil
	}, false)

	first, err := c.Resolve("counter")
	require.NoError(t, err)
	second, err := c.Resolve("counter")
	require.NoError(t, err)

	require.Equal(t, 1, first)
	require.Equal(t, 2, second)
}

func TestResolveSingletonBuildsOnce(t *testing.T) {
	c := New()

	calls := 0
	c.Register("shared", func(*Container) (any, error) {
		calls++
		return &struct{ n int }{n: calls}, nil
	}, true)

	first, err := c.Resolve("shared")
	require.NoError(t, err)
	second, err := c.Resolve("shared")
	require.NoError(t, err)

	require.Same(t, first, second)
	require.Equal(t, 1, calls)
}

func TestResolveUnknownName(t *testing.T) {
	c := New()

	_, err := c.Resolve("missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing")
}

func TestResolveFactoryError(t *testing.T) {
	c := New()

	boom := errors.New("boom")
	c.Register("broken", func(*Container) (any, error) { return nil, boom }, false)

	_, err := c.Resolve("broken")
	require.ErrorIs(t, err, boom)
}

func TestClearRemovesRegistrations(t *testing.T) {
	c := New()

	c.Register("a", func(*Container) (any, error) { return nil, nil }, false)
	c.Register("b", func(*Container) (any, error) { return nil, nil }, true)
	require.Equal(t, []string{"a", "b"}, c.Names())

	c.Clear()
	require.Empty(t, c.Names())
	require.False(t, c.IsRegistered("a"))
}
