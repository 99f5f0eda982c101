package bintext

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

// HexDecodeAny decodes untyped input (decoded JSON, template values) with
// the default codec. Accepts string, []byte and fmt.Stringer; anything else,
// including a nil Stringer pointer, is a *TypeError.
func HexDecodeAny(v any) ([]byte, error) { return HexDecodeAnyWith(std, v) }

// HexDecodeAnyWith is HexDecodeAny through c, so its MaxDecodeLen, logger
// and hooks apply.
func HexDecodeAnyWith(c Codec, v any) ([]byte, error) {
	switch t := v.(type) {
	case string:
		return c.HexDecode(t)
	case []byte:
		return c.HexDecode(string(t))
	case fmt.Stringer:
		if !isNilPointer(t) {
			return c.HexDecode(t.String())
		}
	}
	return nil, &TypeError{Op: opHexDecode, Got: fmt.Sprintf("%T", v)}
}

// HexEncodeAny encodes untyped 16-byte input with the default codec.
// Accepts []byte, [16]byte, *[16]byte, uuid.UUID and []int holding values
// in 0..255.
func HexEncodeAny(v any, asUUID bool) (string, error) { return HexEncodeAnyWith(std, v, asUUID) }

// HexEncodeAnyWith is HexEncodeAny through c.
func HexEncodeAnyWith(c Codec, v any, asUUID bool) (string, error) {
	switch t := v.(type) {
	case []byte:
		return c.HexEncode(t, asUUID)
	case [uuidLen]byte:
		return c.HexEncode(t[:], asUUID)
	case *[uuidLen]byte:
		if t != nil {
			return c.HexEncode(t[:], asUUID)
		}
	case uuid.UUID:
		return c.HexEncode(t[:], asUUID)
	case []int:
		return encodeInts(c, t, asUUID)
	}
	return "", &TypeError{Op: opHexEncode, Got: fmt.Sprintf("%T", v)}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func encodeInts(c Codec, src []int, asUUID bool) (string, error) {
	if len(src) != uuidLen {
		return "", &LengthError{Op: opHexEncode, Len: len(src), Want: strconv.Itoa(uuidLen)}
	}
	var b [uuidLen]byte
	for i, n := range src {
		if n < 0 || n > 0xff {
			return "", &FormatError{
				Op:     opHexEncode,
				Offset: -1,
				Reason: fmt.Sprintf("element %d = %d out of byte range", i, n),
			}
		}
		b[i] = byte(n)
	}
	return c.HexEncode(b[:], asUUID)
}
