package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Memory(t *testing.T) {
	s := NewMemStore()

	_, err := s.Get(t.Context(), "foobar")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(t.Context(), "p1", Entry{Data: []byte("one")}))
	require.NoError(t, s.Put(t.Context(), "p2", Entry{Data: []byte("two")}))

	loaded, err := s.Get(t.Context(), "p1")
	require.NoError(t, err)
	require.Equal(t, []byte("one"), loaded.Data)

	keys, err := s.Keys(t.Context())
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"p1", "p2"}, keys)

	ok, err := s.Delete(t.Context(), "p1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Delete(t.Context(), "p1")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Get(t.Context(), "p1")
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_Memory_EmptySentinel(t *testing.T) {
	s := NewMemStore()

	// Zero-length records read as absent, matching durable media that
	// implement deletion by writing an empty sentinel.
	require.NoError(t, s.Put(t.Context(), "tomb", Entry{}))

	_, err := s.Get(t.Context(), "tomb")
	require.ErrorIs(t, err, ErrNotFound)
}

func Test_Memory_Clear(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Put(t.Context(), "a", Entry{Data: []byte("1")}))
	require.NoError(t, s.Put(t.Context(), "b", Entry{Data: []byte("2")}))
	require.NoError(t, s.Clear(t.Context()))

	keys, err := s.Keys(t.Context())
	require.NoError(t, err)
	require.Empty(t, keys)
}
