package bintext

import (
	"fmt"
	"strings"
)

// Implementation selects the base64 engine used by a Codec.
type Implementation uint8

const (
	// Manual is the hand-written bit-packing engine (default).
	Manual Implementation = iota
	// PlatformNative delegates to encoding/base64.RawURLEncoding.
	PlatformNative
)

func (i Implementation) String() string {
	switch i {
	case Manual:
		return "manual"
	case PlatformNative:
		return "platform-native"
	default:
		return fmt.Sprintf("Implementation(%d)", uint8(i))
	}
}

// ParseImplementation accepts "manual" or "platform-native" (case-insensitive).
// The empty string selects Manual.
func ParseImplementation(s string) (Implementation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "manual":
		return Manual, nil
	case "platform-native", "native":
		return PlatformNative, nil
	}
	return 0, fmt.Errorf("bintext: unknown base64 implementation %q", s)
}

func (i Implementation) MarshalText() ([]byte, error) {
	if i > PlatformNative {
		return nil, fmt.Errorf("bintext: unknown base64 implementation %d", uint8(i))
	}
	return []byte(i.String()), nil
}

func (i *Implementation) UnmarshalText(b []byte) error {
	v, err := ParseImplementation(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// TrailingPolicy controls Base64Encode for inputs whose length is not a
// multiple of 3. Output is never padded.
type TrailingPolicy uint8

const (
	// TrailingReject fails with *LengthError (default).
	TrailingReject TrailingPolicy = iota
	// TrailingDrop silently omits the last 1-2 bytes from the output and
	// reports them through Hooks.EncodeTruncated.
	TrailingDrop
)

// Codec is the binary-to-text API. Implementations are immutable and safe
// for concurrent use.
type Codec interface {
	// HexEncode renders exactly 16 bytes as 32 hex chars, or as 36 chars
	// grouped 8-4-4-4-12 when asUUID is set.
	HexEncode(src []byte, asUUID bool) (string, error)
	// HexDecode strips every '-' and decodes the remaining even-length hex.
	HexDecode(s string) ([]byte, error)

	// Base64Encode packs 3-byte groups into 4 URL-safe chars, no padding.
	Base64Encode(src []byte) (string, error)
	// Base64Decode unpacks 4-char groups; len(s) must be a multiple of 4.
	Base64Decode(s string) ([]byte, error)

	Implementation() Implementation
}

// Options tune a Codec. The zero value is valid.
type Options struct {
	Implementation Implementation // 0 => Manual
	Trailing       TrailingPolicy // 0 => TrailingReject
	MaxDecodeLen   int            // max input chars accepted by decoders; <=0 => unlimited
	Logger         Logger         // if nil, NopLogger is used
	Hooks          Hooks          // if nil, NopHooks is used
}

func New(opts Options) (Codec, error) {
	return newCodec(opts)
}

// MustNew is like New but panics on error.
func MustNew(opts Options) Codec {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

var std = MustNew(Options{})

// Default returns the package-level codec used by the top-level functions.
func Default() Codec { return std }

func HexEncode(src []byte, asUUID bool) (string, error) { return std.HexEncode(src, asUUID) }
func HexDecode(s string) ([]byte, error)                { return std.HexDecode(s) }
func Base64Encode(src []byte) (string, error)           { return std.Base64Encode(src) }
func Base64Decode(s string) ([]byte, error)             { return std.Base64Decode(s) }
