package hooks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/fcache-go/ports/kv"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newClock(ms int64) *clock { return &clock{now: time.UnixMilli(ms)} }

func TestHooks_WriteThenRead(t *testing.T) {
	s := kv.NewMemStore()
	clk := newClock(1_000_000)
	h := New[string](s, Config{Key: "profile", TTL: time.Second, Now: clk.Now})

	out, err := h.OnWrite(t.Context(), "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", out, "OnWrite surfaces the bare payload")

	v, ok, err := h.OnRead(t.Context(), "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice", v)

	// Exactly at the boundary the entry is expired and evicted.
	clk.now = clk.now.Add(time.Second)
	_, ok, err = h.OnRead(t.Context(), "")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Get(t.Context(), "profile")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestHooks_ReadAbsent(t *testing.T) {
	h := New[int](kv.NewMemStore(), Config{Key: "n"})

	_, ok, err := h.OnRead(t.Context(), "never-written")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHooks_Metadata(t *testing.T) {
	clk := newClock(42_000)
	h := New[string](kv.NewMemStore(), Config{Key: "k", Now: clk.Now})

	_, err := h.OnWrite(t.Context(), "v")
	require.NoError(t, err)

	at, ok, err := h.Metadata(t.Context(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(42_000), at.UnixMilli())

	// Metadata reports even expired entries; it does no validity filtering.
	clk.now = clk.now.Add(48 * time.Hour)
	at, ok, err = h.Metadata(t.Context(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(42_000), at.UnixMilli())

	_, ok, err = h.Metadata(t.Context(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHooks_Pair(t *testing.T) {
	h := New[string](kv.NewMemStore(), Config{Key: "k"})
	write, read := h.Pair()

	_, err := write(t.Context(), "staged")
	require.NoError(t, err)

	v, ok, err := read(t.Context(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "staged", v)
}

func TestHooks_DefaultTTL(t *testing.T) {
	clk := newClock(0)
	h := New[string](kv.NewMemStore(), Config{Key: "k", Now: clk.Now})

	_, err := h.OnWrite(t.Context(), "v")
	require.NoError(t, err)

	clk.now = clk.now.Add(59 * time.Minute)
	_, ok, err := h.OnRead(t.Context(), "")
	require.NoError(t, err)
	require.True(t, ok, "fresh inside the default hour")

	clk.now = clk.now.Add(time.Minute)
	_, ok, err = h.OnRead(t.Context(), "")
	require.NoError(t, err)
	require.False(t, ok, "expired at exactly one hour")
}

func TestHooks_MisusePanics(t *testing.T) {
	require.Panics(t, func() { New[string](nil, Config{Key: "k"}) })
	require.Panics(t, func() { New[string](kv.NewMemStore(), Config{}) })
}
