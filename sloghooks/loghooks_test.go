package sloghooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/bintext"
)

func newJSON(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		out = append(out, m)
	}
	return out
}

func TestRedactsKeys(t *testing.T) {
	var buf bytes.Buffer
	h := New(newJSON(&buf), Options{})
	h.SelfHeal("payload:user:550e8400e29b41d4a716446655440000", "corrupt")
	h.ProviderSetRejected("payload:user:550e8400e29b41d4a716446655440000")

	ls := lines(t, &buf)
	require.Len(t, ls, 2)
	key := ls[0]["key"].(string)
	assert.Len(t, key, 32)
	assert.NotContains(t, key, "user")
	_, err := bintext.HexDecode(key)
	assert.NoError(t, err)
	assert.Equal(t, key, ls[1]["key"])
	assert.Equal(t, "corrupt", ls[0]["reason"])
}

func TestCustomRedactor(t *testing.T) {
	var buf bytes.Buffer
	h := New(newJSON(&buf), Options{Redact: func(string) string { return "x" }})
	h.SelfHeal("k", "value_decode")
	assert.Equal(t, "x", lines(t, &buf)[0]["key"])
}

func TestSamplesRejects(t *testing.T) {
	var buf bytes.Buffer
	h := New(newJSON(&buf), Options{RejectEvery: 5})
	for i := 0; i < 20; i++ {
		h.DecodeRejected("hex.decode", errors.New("bad"))
	}
	assert.Len(t, lines(t, &buf), 4)
}

func TestWiredIntoCodec(t *testing.T) {
	var buf bytes.Buffer
	h := New(newJSON(&buf), Options{})
	c := bintext.MustNew(bintext.Options{Hooks: h, Trailing: bintext.TrailingDrop})
	_, _ = c.Base64Encode([]byte{1, 2})
	_, _ = c.Base64Decode("!!!!")

	ls := lines(t, &buf)
	require.Len(t, ls, 2)
	assert.Equal(t, "bintext.encode_truncated", ls[0]["msg"])
	assert.EqualValues(t, 2, ls[0]["dropped"])
	assert.Equal(t, "bintext.decode_rejected", ls[1]["msg"])
	assert.Equal(t, "base64.decode", ls[1]["op"])
}

func TestNilLogger(t *testing.T) {
	h := New(nil, Options{})
	h.DecodeRejected("hex.decode", nil)
	h.EncodeTruncated("base64.encode", 1)
	h.SelfHeal("k", "corrupt")
	h.ProviderSetRejected("k")
}
