// Package codec serializes values to bytes and, through Text, to compact
// base64url tokens.
package codec

import "github.com/unkn0wn-root/bintext/internal/wire"

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// ErrCorrupt is returned (wrapped) when a token decodes as base64 but its
// envelope is malformed.
var ErrCorrupt = wire.ErrCorrupt
