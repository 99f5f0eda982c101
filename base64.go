package bintext

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// Alphabet is the URL-safe base64 digit set, value order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const badAlphabet = "not in base64url alphabet"

// b64Value maps a byte to its 6-bit digit value; 0xff for non-members.
var b64Value = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xff
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// RawURLEncoding uses the same digits; only full groups are ever handed to it.
var native = base64.RawURLEncoding

// encodeBase64 expects len(src)%3 == 0.
func encodeBase64(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	dst := make([]byte, len(src)/3*4)
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		b0, b1, b2 := src[i], src[i+1], src[i+2]
		dst[j] = Alphabet[b0>>2]
		dst[j+1] = Alphabet[(b0&3)<<4|b1>>4]
		dst[j+2] = Alphabet[(b1&15)<<2|b2>>6]
		dst[j+3] = Alphabet[b2&63]
	}
	// dst is never written again
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

func encodeBase64Native(src []byte) string {
	return native.EncodeToString(src)
}

func decodeBase64(s string) ([]byte, error) {
	if err := checkGroups(s); err != nil {
		return nil, err
	}

	dst := make([]byte, len(s)/4*3)
	for i, j := 0, 0; i < len(s); i, j = i+4, j+3 {
		v0, v1, v2, v3 := b64Value[s[i]], b64Value[s[i+1]], b64Value[s[i+2]], b64Value[s[i+3]]
		// valid digits are < 64, so any 0xff marker leaves the top bits set
		if (v0|v1|v2|v3)&0xc0 != 0 {
			return nil, badDigit(s, i)
		}
		tmp := uint32(v0)<<18 | uint32(v1)<<12 | uint32(v2)<<6 | uint32(v3)
		dst[j] = byte(tmp >> 16)
		dst[j+1] = byte(tmp >> 8)
		dst[j+2] = byte(tmp)
	}
	return dst, nil
}

func decodeBase64Native(s string) ([]byte, error) {
	if err := checkGroups(s); err != nil {
		return nil, err
	}
	// encoding/base64 skips CR and LF; a 4-char group containing one would
	// otherwise decode as a short group.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, &FormatError{Op: opBase64Decode, Offset: i, Char: s[i], Reason: badAlphabet}
	}

	dst := make([]byte, native.DecodedLen(len(s)))
	n, err := native.Decode(dst, []byte(s))
	if err != nil {
		var ce base64.CorruptInputError
		if errors.As(err, &ce) && int(ce) < len(s) {
			return nil, &FormatError{Op: opBase64Decode, Offset: int(ce), Char: s[ce], Reason: badAlphabet}
		}
		return nil, &FormatError{Op: opBase64Decode, Offset: -1, Reason: err.Error()}
	}
	return dst[:n], nil
}

func checkGroups(s string) error {
	if len(s)%4 != 0 {
		return &FormatError{
			Op:     opBase64Decode,
			Offset: -1,
			Reason: fmt.Sprintf("length %d is not a multiple of 4", len(s)),
		}
	}
	return nil
}

// badDigit locates the first non-alphabet byte in the group starting at i.
func badDigit(s string, i int) error {
	for k := i; k < i+4; k++ {
		if b64Value[s[k]] == 0xff {
			return &FormatError{Op: opBase64Decode, Offset: k, Char: s[k], Reason: badAlphabet}
		}
	}
	return &FormatError{Op: opBase64Decode, Offset: i, Char: s[i], Reason: badAlphabet}
}
