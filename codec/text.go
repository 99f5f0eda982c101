package codec

import (
	"fmt"
	"sort"

	"github.com/unkn0wn-root/bintext"
	"github.com/unkn0wn-root/bintext/internal/wire"
)

// Text turns values into base64url tokens: Inner serializes the value, the
// payload is framed so its length is a multiple of 3, and the frame is
// encoded with the URL-safe, unpadded alphabet. Tokens are safe in URLs,
// cookies and file names.
//
// Text is itself a Codec[V] (the token bytes are ASCII), so it can be
// stacked under a store that wants textual values.
type Text[V any] struct {
	Inner Codec[V]
	// Enc is the base64 engine; nil => bintext.Default().
	Enc bintext.Codec
}

var _ Codec[string] = Text[string]{}

func NewText[V any](inner Codec[V], enc bintext.Codec) Text[V] {
	return Text[V]{Inner: inner, Enc: enc}
}

func (t Text[V]) enc() bintext.Codec {
	if t.Enc == nil {
		return bintext.Default()
	}
	return t.Enc
}

// Seal encodes v as a token.
func (t Text[V]) Seal(v V) (string, error) {
	payload, err := t.Inner.Encode(v)
	if err != nil {
		return "", err
	}
	return t.enc().Base64Encode(wire.EncodeSingle(payload))
}

// Open decodes a token produced by Seal. Base64 problems surface as
// bintext errors (ErrFormat, ErrLength); a bad envelope wraps ErrCorrupt.
func (t Text[V]) Open(token string) (V, error) {
	var zero V
	raw, err := t.enc().Base64Decode(token)
	if err != nil {
		return zero, err
	}
	payload, err := wire.DecodeSingle(raw)
	if err != nil {
		return zero, fmt.Errorf("codec: open token: %w", err)
	}
	return t.Inner.Decode(payload)
}

// SealBatch encodes a keyed set as one token. Keys are written in sorted
// order so equal maps give equal tokens with deterministic inner codecs.
func (t Text[V]) SealBatch(items map[string]V) (string, error) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	wireItems := make([]wire.Item, 0, len(keys))
	for _, k := range keys {
		payload, err := t.Inner.Encode(items[k])
		if err != nil {
			return "", fmt.Errorf("codec: seal %q: %w", k, err)
		}
		wireItems = append(wireItems, wire.Item{Key: k, Payload: payload})
	}
	raw, err := wire.EncodeBatch(wireItems)
	if err != nil {
		return "", err
	}
	return t.enc().Base64Encode(raw)
}

// OpenBatch decodes a token produced by SealBatch. With duplicate keys
// the last one wins.
func (t Text[V]) OpenBatch(token string) (map[string]V, error) {
	raw, err := t.enc().Base64Decode(token)
	if err != nil {
		return nil, err
	}
	items, err := wire.DecodeBatch(raw)
	if err != nil {
		return nil, fmt.Errorf("codec: open batch token: %w", err)
	}
	out := make(map[string]V, len(items))
	for _, it := range items {
		v, err := t.Inner.Decode(it.Payload)
		if err != nil {
			return nil, fmt.Errorf("codec: open %q: %w", it.Key, err)
		}
		out[it.Key] = v
	}
	return out, nil
}

func (t Text[V]) Encode(v V) ([]byte, error) {
	s, err := t.Seal(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (t Text[V]) Decode(b []byte) (V, error) { return t.Open(string(b)) }
