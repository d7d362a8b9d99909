package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New[[]string](time.Minute, 10)
	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("k", []string{"a", "b"})
	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New[int](time.Minute, 10)
	c.now = func() time.Time { return now }

	c.Set("k", 1)
	now = now.Add(61 * time.Second)
	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestEvictionPrefersExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New[int](time.Minute, 2)
	c.now = func() time.Time { return now }

	c.Set("old", 1)
	now = now.Add(2 * time.Minute)
	c.Set("fresh", 2)
	c.Set("newer", 3)

	require.Equal(t, 2, c.Len())
	_, ok := c.Get("fresh")
	require.True(t, ok)
	_, ok = c.Get("newer")
	require.True(t, ok)
}

func TestDisabled(t *testing.T) {
	c := New[int](0, 10)
	c.Set("k", 1)
	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestKey(t *testing.T) {
	require.Equal(t, Key("US", "water bottle", "10"), Key("US", "water bottle", "10"))
	require.NotEqual(t, Key("US", "water bottle", "10"), Key("GB", "water bottle", "10"))
	require.Len(t, Key("x"), 64)
}
