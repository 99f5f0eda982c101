package slog

import (
	"bytes"
	"encoding/json"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/bintext"
)

func TestSlogLoggerThroughCodec(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewJSONHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))}

	c := bintext.MustNew(bintext.Options{Logger: l, Trailing: bintext.TrailingDrop})
	_, err := c.Base64Encode([]byte{1, 2, 3, 4})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "base64 encode dropped trailing bytes", line["msg"])
	assert.EqualValues(t, 1, line["dropped"])
	assert.EqualValues(t, 4, line["len"])
}

func TestSlogLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn}))}
	l.Debug("hidden", bintext.Fields{"a": 1})
	l.Info("hidden", nil)
	assert.Zero(t, buf.Len())
	l.Error("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
