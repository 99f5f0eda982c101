package bintext

import "strings"

const (
	hexDigits      = "0123456789abcdef"
	hexDigitsUpper = "0123456789ABCDEF"

	uuidLen     = 16
	hexLen      = 2 * uuidLen
	uuidTextLen = hexLen + 4
)

// hexTable[b] is the zero-padded lowercase form of b.
var hexTable = func() (t [256][2]byte) {
	for i := range t {
		t[i] = [2]byte{hexDigits[i>>4], hexDigits[i&0x0f]}
	}
	return t
}()

// hexValue maps an ASCII hex digit (either case) to its nibble; 0xff otherwise.
var hexValue = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xff
	}
	for i := 0; i < 16; i++ {
		t[hexDigits[i]] = byte(i)
		t[hexDigitsUpper[i]] = byte(i)
	}
	return t
}()

// EncodeUUID renders src as 32 lowercase hex chars, or in the 8-4-4-4-12
// dashed form when asUUID is set. It cannot fail: the length is in the type.
func EncodeUUID(src [16]byte, asUUID bool) string {
	var buf [uuidTextLen]byte
	return string(appendUUID(buf[:0], &src, asUUID))
}

func appendUUID(dst []byte, src *[uuidLen]byte, dashed bool) []byte {
	for i, b := range src {
		if dashed && (i == 4 || i == 6 || i == 8 || i == 10) {
			dst = append(dst, '-')
		}
		p := hexTable[b]
		dst = append(dst, p[0], p[1])
	}
	return dst
}

// decodeHex skips every '-' in s and decodes the remaining digits pairwise.
// Offsets in errors refer to s as given, dashes included.
func decodeHex(s string) ([]byte, error) {
	n := len(s) - strings.Count(s, "-")
	if n%2 != 0 {
		return nil, &LengthError{Op: opHexDecode, Len: n, Want: "even"}
	}

	out := make([]byte, n/2)
	var hi byte
	half, j := false, 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '-' {
			continue
		}
		v := hexValue[ch]
		if v == 0xff {
			return nil, &FormatError{Op: opHexDecode, Offset: i, Char: ch, Reason: "not a hex digit"}
		}
		if !half {
			hi, half = v, true
			continue
		}
		out[j] = hi<<4 | v
		j++
		half = false
	}
	return out, nil
}
