package bintext

import (
	"fmt"
	"strconv"
)

const (
	opHexEncode    = "hex.encode"
	opHexDecode    = "hex.decode"
	opBase64Encode = "base64.encode"
	opBase64Decode = "base64.decode"
)

type codec struct {
	impl      Implementation
	trailing  TrailingPolicy
	maxDecode int
	log       Logger
	hooks     Hooks
}

var _ Codec = (*codec)(nil)

func newCodec(opts Options) (*codec, error) {
	if opts.Implementation > PlatformNative {
		return nil, fmt.Errorf("bintext: unknown base64 implementation %d", uint8(opts.Implementation))
	}
	if opts.Trailing > TrailingDrop {
		return nil, fmt.Errorf("bintext: unknown trailing policy %d", uint8(opts.Trailing))
	}

	c := &codec{
		impl:      opts.Implementation,
		trailing:  opts.Trailing,
		maxDecode: opts.MaxDecodeLen,
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c, nil
}

func (c *codec) Implementation() Implementation { return c.impl }

func (c *codec) HexEncode(src []byte, asUUID bool) (string, error) {
	if len(src) != uuidLen {
		return "", &LengthError{Op: opHexEncode, Len: len(src), Want: strconv.Itoa(uuidLen)}
	}
	return EncodeUUID([uuidLen]byte(src), asUUID), nil
}

func (c *codec) HexDecode(s string) ([]byte, error) {
	if err := c.checkDecodeLen(opHexDecode, len(s)); err != nil {
		return nil, err
	}
	b, err := decodeHex(s)
	if err != nil {
		return nil, c.reject(opHexDecode, err)
	}
	return b, nil
}

func (c *codec) Base64Encode(src []byte) (string, error) {
	n := len(src) / 3 * 3
	if dropped := len(src) - n; dropped != 0 {
		if c.trailing == TrailingReject {
			return "", &LengthError{Op: opBase64Encode, Len: len(src), Want: "multiple of 3"}
		}
		c.log.Warn("base64 encode dropped trailing bytes", Fields{"len": len(src), "dropped": dropped})
		c.hooks.EncodeTruncated(opBase64Encode, dropped)
	}
	if c.impl == PlatformNative {
		return encodeBase64Native(src[:n]), nil
	}
	return encodeBase64(src[:n]), nil
}

func (c *codec) Base64Decode(s string) ([]byte, error) {
	if err := c.checkDecodeLen(opBase64Decode, len(s)); err != nil {
		return nil, err
	}
	var (
		b   []byte
		err error
	)
	if c.impl == PlatformNative {
		b, err = decodeBase64Native(s)
	} else {
		b, err = decodeBase64(s)
	}
	if err != nil {
		return nil, c.reject(opBase64Decode, err)
	}
	return b, nil
}

func (c *codec) checkDecodeLen(op string, n int) error {
	if c.maxDecode > 0 && n > c.maxDecode {
		return c.reject(op, &LengthError{Op: op, Len: n, Want: "<= " + strconv.Itoa(c.maxDecode)})
	}
	return nil
}

func (c *codec) reject(op string, err error) error {
	c.log.Debug("decode rejected", Fields{"op": op, "err": err})
	c.hooks.DecodeRejected(op, err)
	return err
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
