// Package wire frames payloads so their total length is a multiple of 3 and
// therefore always accepted, without dropping bytes, by the strict base64
// encoder. Filler bytes are zero and their count is recorded in the header.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	version    byte = 1
	kindSingle byte = 1
	kindBatch  byte = 2

	group = 3
)

var (
	ErrCorrupt = errors.New("bintext: corrupt envelope")
	magic4     = [...]byte{'B', 'T', 'X', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

func padFor(n int) int { return (group - n%group) % group }

// Single: magic(4) | ver(1) | kind(1=single) | pad(1) | vlen(u32 be) | payload(vlen) | zero(pad)
func EncodeSingle(payload []byte) []byte {
	const hdr = 4 + 1 + 1 + 1 + 4
	pad := padFor(hdr + len(payload))

	var buf bytes.Buffer
	buf.Grow(hdr + len(payload) + pad)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSingle)
	buf.WriteByte(byte(pad))

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	buf.Write(make([]byte, pad))
	return buf.Bytes()
}

// DecodeSingle returns a slice into b; it does not copy.
func DecodeSingle(b []byte) (payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSingle {
		return nil, ErrCorrupt
	}
	body, err := trimPad(b, 6)
	if err != nil {
		return nil, err
	}

	off := 7
	vlen := int(binary.BigEndian.Uint32(body[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(body)-off {
		return nil, ErrCorrupt
	}
	return body[off : off+vlen], nil
}

// Batch:
//
//	magic(4) | ver(1) | kind(2=batch) | pad(1) | n(u32 be)
//	keyLen(u16 be) | key(keyLen) | vlen(u32 be) | payload(vlen) * n
//	zero(pad)
type Item struct {
	Key     string
	Payload []byte
}

func EncodeBatch(items []Item) ([]byte, error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	total := hdr
	for _, it := range items {
		if l := len(it.Key); l == 0 || l > 0xFFFF {
			return nil, fmt.Errorf("bintext: invalid key length %d in batch", l)
		}
		total += 2 + len(it.Key) + 4 + len(it.Payload)
	}
	pad := padFor(total)

	var buf bytes.Buffer
	buf.Grow(total + pad)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBatch)
	buf.WriteByte(byte(pad))

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(items)))
	buf.Write(u4[:])

	for _, it := range items {
		binary.BigEndian.PutUint16(u2[:], uint16(len(it.Key)))
		buf.Write(u2[:])
		buf.WriteString(it.Key)

		binary.BigEndian.PutUint32(u4[:], uint32(len(it.Payload)))
		buf.Write(u4[:])
		buf.Write(it.Payload)
	}

	buf.Write(make([]byte, pad))
	return buf.Bytes(), nil
}

func DecodeBatch(b []byte) ([]Item, error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindBatch {
		return nil, ErrCorrupt
	}
	body, err := trimPad(b, 6)
	if err != nil {
		return nil, err
	}

	off := 7
	n := int(binary.BigEndian.Uint32(body[off : off+4]))
	off += 4
	// every item needs at least 2+1+4 bytes
	if n < 0 || n > (len(body)-off)/7 {
		return nil, ErrCorrupt
	}

	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		// keyLen
		if off+2 > len(body) {
			return nil, ErrCorrupt
		}
		klen := int(binary.BigEndian.Uint16(body[off : off+2]))
		off += 2
		if klen <= 0 || klen > len(body)-off {
			return nil, ErrCorrupt
		}
		keyBytes := body[off : off+klen]
		off += klen

		// vlen
		if off+4 > len(body) {
			return nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(body[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(body)-off {
			return nil, ErrCorrupt
		}

		items = append(items, Item{
			Key:     string(keyBytes),
			Payload: body[off : off+vlen],
		})
		off += vlen
	}
	if off != len(body) {
		return nil, ErrCorrupt
	}

	return items, nil
}

// trimPad validates the filler announced at b[at] and returns b without it.
func trimPad(b []byte, at int) ([]byte, error) {
	if len(b)%group != 0 {
		return nil, ErrCorrupt
	}
	pad := int(b[at])
	if pad >= group || pad > len(b) {
		return nil, ErrCorrupt
	}
	body, tail := b[:len(b)-pad], b[len(b)-pad:]
	for _, z := range tail {
		if z != 0 {
			return nil, ErrCorrupt
		}
	}
	if len(body) < at+1+4 {
		return nil, ErrCorrupt
	}
	return body, nil
}
