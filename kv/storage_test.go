package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		s := New().Set("Hello", "world")
		require.Equal(t, "world", s.Value("Hello"))
		require.Equal(t, "world", s.Value("hello"))
		require.Equal(t, "world", s.Value("HELLO"))
		require.Empty(t, s.Value("nonexistent"))
		require.Equal(t, "fallback", s.ValueOr("nonexistent", "fallback"))
	})

	t.Run("set replaces", func(t *testing.T) {
		s := New().Set("Accept", "one").Set("accept", "two")
		require.Equal(t, 1, s.Len())
		require.Equal(t, "two", s.Value("Accept"))
	})

	t.Run("append to last", func(t *testing.T) {
		s := New().Set("X-Foo", "bar")
		require.True(t, s.AppendToLast("baz"))
		require.Equal(t, "barbaz", s.Value("x-foo"))
	})

	t.Run("append to last follows an overwrite", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2").Set("A", "3")
		require.True(t, s.AppendToLast("cont"))
		require.Equal(t, "3cont", s.Value("a"))
		require.Equal(t, "2", s.Value("b"))
	})

	t.Run("append to last on empty storage", func(t *testing.T) {
		require.False(t, New().AppendToLast("anything"))
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2").Set("c", "3")
		require.Equal(t, []string{"a", "b", "c"}, s.Keys())
	})

	t.Run("iter", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2")
		var pairs []Pair
		for key, value := range s.Iter() {
			pairs = append(pairs, Pair{key, value})
		}

		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, pairs)
	})

	t.Run("clear", func(t *testing.T) {
		s := New().Set("a", "1")
		require.Equal(t, 0, s.Clear().Len())
		require.False(t, s.Has("a"))
	})

	t.Run("from map", func(t *testing.T) {
		s := NewFromMap(map[string]string{"a": "1", "b": "2"})
		require.Equal(t, 2, s.Len())
		require.Equal(t, "1", s.Value("a"))
		require.Equal(t, "2", s.Value("b"))
	})
}
