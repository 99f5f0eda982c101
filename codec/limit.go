package codec

import (
	"strconv"

	"github.com/unkn0wn-root/bintext"
)

// Limit wraps another codec to enforce a maximum payload size at Decode
// time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0, size
// limiting is disabled.
//
// Typical use: refuse oversized tokens or entries coming from a shared
// store before the inner decoder allocates for them.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted payload length in bytes.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, &bintext.LengthError{Op: "codec.decode", Len: len(b), Want: "<= " + strconv.Itoa(c.MaxDecode)}
	}
	return c.Inner.Decode(b)
}
