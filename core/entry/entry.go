package entry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/codewandler/fcache-go/internal/codec"
)

// Entry wraps a cached payload together with the instant it was fetched.
type Entry[T any] struct {
	Payload   T
	FetchedAt time.Time
}

// Wrap stamps payload with the current wall-clock time.
func Wrap[T any](payload T) Entry[T] {
	return WrapAt(payload, time.Now())
}

// WrapAt stamps payload with an explicit fetch time. Useful together with an
// injected clock.
func WrapAt[T any](payload T, at time.Time) Entry[T] {
	return Entry[T]{Payload: payload, FetchedAt: at}
}

// Unwrap returns the payload.
func (e Entry[T]) Unwrap() T { return e.Payload }

// envelope is the persisted shape. FetchedAt travels as unix milliseconds.
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	FetchedAt int64           `json:"fetchedAt"`
}

var jsonCodec = codec.JSONCodec{}

// Encode serializes an entry into its envelope form.
func Encode[T any](e Entry[T]) ([]byte, error) {
	payload, err := jsonCodec.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return jsonCodec.Marshal(envelope{
		Payload:   payload,
		FetchedAt: e.FetchedAt.UnixMilli(),
	})
}

// Decode parses an envelope back into an entry. The returned fetch time has
// millisecond precision.
func Decode[T any](data []byte) (out Entry[T], err error) {
	var env envelope
	if err := jsonCodec.Unmarshal(data, &env); err != nil {
		return out, fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Payload) == 0 {
		return out, fmt.Errorf("decode envelope: missing payload")
	}
	if err := jsonCodec.Unmarshal(env.Payload, &out.Payload); err != nil {
		return out, fmt.Errorf("decode payload: %w", err)
	}
	out.FetchedAt = time.UnixMilli(env.FetchedAt)
	return out, nil
}

// DecodeTime extracts only the fetch time from an envelope. Lets metadata and
// sweep paths inspect freshness without knowing the payload type.
func DecodeTime(data []byte) (time.Time, error) {
	var env envelope
	if err := jsonCodec.Unmarshal(data, &env); err != nil {
		return time.Time{}, fmt.Errorf("decode envelope: %w", err)
	}
	return time.UnixMilli(env.FetchedAt), nil
}
