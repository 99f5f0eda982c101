// Package bintext converts binary identifiers and payloads to compact text
// and back. It has two codecs:
//
//   - Hex: exactly 16 bytes (UUIDs) to 32 lowercase hex chars, or to the
//     dashed 8-4-4-4-12 form. Decoding is general: dashes are stripped
//     wherever they appear and any even-length hex is accepted.
//   - Base64: the URL-safe alphabet A-Z a-z 0-9 - _ with no padding. Input
//     is processed in whole 3-byte / 4-char groups only.
//
// Wire format:
//
//	hex     550e8400e29b41d4a716446655440000
//	uuid    550e8400-e29b-41d4-a716-446655440000
//	base64  AAAA (0x000000), ____ (0xffffff)
//
// Encoding a buffer whose length is not a multiple of 3 fails with a
// *LengthError unless Options.Trailing is TrailingDrop, in which case the
// last 1-2 bytes are left out of the output. Decoding never guesses: a
// length that is not a multiple of 4 or a byte outside the alphabet is a
// *FormatError.
//
// Two base64 engines exist (Options.Implementation): Manual, the default,
// and PlatformNative, backed by encoding/base64. Both produce identical text.
//
// All lookup tables are built during package initialization and are read
// only afterwards; every function here is safe for concurrent use.
//
// Subpackages build on the codecs: ident (UUID identifiers), codec (value
// serializers and base64 payload tokens), store (identifier-keyed payload
// storage over a provider).
package bintext
