package nats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/fcache-go/core/policy"
	"github.com/codewandler/fcache-go/ports/kv"
)

func TestKV(t *testing.T) {
	connectNats := NewTestContainer(t)
	s, err := New(t.Context(), Config{
		Bucket:  "cache",
		Connect: connectNats,
	})
	require.NoError(t, err)

	_, err = s.Get(t.Context(), "missing")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Put(t.Context(), "apple", kv.Entry{Data: []byte("red")}))

	v, err := s.Get(t.Context(), "apple")
	require.NoError(t, err)
	require.Equal(t, []byte("red"), v.Data)

	keys, err := s.Keys(t.Context())
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"apple"}, keys)

	ok, err := s.Delete(t.Context(), "apple")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Delete(t.Context(), "apple")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKV_EnvelopeRoundTrip(t *testing.T) {
	connectNats := NewTestContainer(t)
	s, err := New(t.Context(), Config{
		Bucket:  "cache_envelope",
		Connect: connectNats,
	})
	require.NoError(t, err)

	now := time.UnixMilli(1_000_000)
	require.NoError(t, policy.Write(t.Context(), s, "k", map[string]int{"n": 1}, now))

	v, ok, err := policy.CheckAndEvict[map[string]int](t.Context(), s, "k", time.Second, now.Add(500*time.Millisecond))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, map[string]int{"n": 1}, v)

	// Past the boundary the lookup evicts through the adapter as well.
	_, ok, err = policy.CheckAndEvict[map[string]int](t.Context(), s, "k", time.Second, now.Add(time.Second))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Get(t.Context(), "k")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestKV_Clear(t *testing.T) {
	connectNats := NewTestContainer(t)
	s, err := New(t.Context(), Config{
		Bucket:  "cache_clear",
		Connect: connectNats,
	})
	require.NoError(t, err)

	require.NoError(t, s.Put(t.Context(), "a", kv.Entry{Data: []byte("1")}))
	require.NoError(t, s.Put(t.Context(), "b", kv.Entry{Data: []byte("2")}))
	require.NoError(t, s.Clear(t.Context()))

	keys, err := s.Keys(t.Context())
	require.NoError(t, err)
	require.Empty(t, keys)
}
