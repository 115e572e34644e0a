package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	before := time.Now()
	e := Wrap("hello")
	after := time.Now()

	require.Equal(t, "hello", e.Unwrap())
	require.False(t, e.FetchedAt.Before(before))
	require.False(t, e.FetchedAt.After(after))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	type page struct {
		Title string `json:"title"`
		Hits  int    `json:"hits"`
	}

	at := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)
	e := WrapAt(page{Title: "home", Hits: 42}, at)

	data, err := Encode(e)
	require.NoError(t, err)

	got, err := Decode[page](data)
	require.NoError(t, err)
	require.Equal(t, e.Payload, got.Payload)

	// The instant survives to millisecond precision.
	require.Equal(t, at.UnixMilli(), got.FetchedAt.UnixMilli())
}

func TestEncodeDecode_NullPayload(t *testing.T) {
	// A null payload is a legal cached value, not a decode error.
	e := WrapAt[*string](nil, time.UnixMilli(1000))

	data, err := Encode(e)
	require.NoError(t, err)

	got, err := Decode[*string](data)
	require.NoError(t, err)
	require.Nil(t, got.Payload)
	require.Equal(t, int64(1000), got.FetchedAt.UnixMilli())
}

func TestDecode_Corrupt(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte(""),
		[]byte("not json"),
		[]byte(`{"fetchedAt":"yesterday"}`),
		[]byte(`{"fetchedAt":123}`), // no payload field
	} {
		_, err := Decode[string](data)
		require.Error(t, err, "data: %q", data)
	}
}

func TestDecodeTime(t *testing.T) {
	e := WrapAt("x", time.UnixMilli(987654321))
	data, err := Encode(e)
	require.NoError(t, err)

	at, err := DecodeTime(data)
	require.NoError(t, err)
	require.Equal(t, int64(987654321), at.UnixMilli())

	_, err = DecodeTime([]byte("garbage"))
	require.Error(t, err)
}
