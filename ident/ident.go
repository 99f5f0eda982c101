// Package ident provides a 16-byte identifier with the textual forms used
// across bintext: dashed UUID, plain hex, and a 24-char base64url form.
package ident

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/bintext"
)

const size = 16

// ID is a 16-byte identifier, usually a UUID.
type ID [size]byte

// Nil is the all-zero ID.
var Nil ID

// New returns a random (version 4) ID.
func New() ID { return ID(uuid.New()) }

// NewV7 returns a time-ordered (version 7) ID.
func NewV7() (ID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return Nil, err
	}
	return ID(u), nil
}

func FromUUID(u uuid.UUID) ID { return ID(u) }

func (id ID) UUID() uuid.UUID { return uuid.UUID(id) }

// FromBytes copies exactly 16 bytes.
func FromBytes(b []byte) (ID, error) {
	if len(b) != size {
		return Nil, &bintext.LengthError{Op: "ident.from_bytes", Len: len(b), Want: strconv.Itoa(size)}
	}
	return ID(b), nil
}

// Parse accepts the dashed UUID form or 32 plain hex digits, either case.
// Dashes are ignored wherever they appear.
func Parse(s string) (ID, error) {
	b, err := bintext.HexDecode(s)
	if err != nil {
		return Nil, err
	}
	if len(b) != size {
		return Nil, &bintext.LengthError{Op: "ident.parse", Len: len(b), Want: strconv.Itoa(size)}
	}
	return ID(b), nil
}

func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ident: Parse(%q): %v", s, err))
	}
	return id
}

// String returns the dashed 8-4-4-4-12 form.
func (id ID) String() string { return bintext.EncodeUUID(id, true) }

// Hex returns 32 lowercase hex digits.
func (id ID) Hex() string { return bintext.EncodeUUID(id, false) }

func (id ID) IsNil() bool { return id == Nil }

// Base64 returns a 24-char base64url form. The 16 bytes are followed by two
// zero bytes to fill the last 3-byte group, so the form always ends in "AA".
func (id ID) Base64() string {
	var buf [size + 2]byte
	copy(buf[:], id[:])
	s, _ := bintext.Base64Encode(buf[:]) // 18 is a multiple of 3
	return s
}

// ParseBase64 is the inverse of Base64. Non-zero filler is rejected so
// every ID has exactly one base64 form.
func ParseBase64(s string) (ID, error) {
	if len(s) != 24 {
		return Nil, &bintext.LengthError{Op: "ident.parse_base64", Len: len(s), Want: "24"}
	}
	b, err := bintext.Base64Decode(s)
	if err != nil {
		return Nil, err
	}
	if b[size] != 0 || b[size+1] != 0 {
		return Nil, &bintext.FormatError{Op: "ident.parse_base64", Offset: -1, Reason: "non-zero filler bits"}
	}
	return ID(b[:size]), nil
}

// MarshalText emits the dashed form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
