package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/bintext"
)

func TestZapLoggerThroughCodec(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	c := bintext.MustNew(bintext.Options{Logger: l, Trailing: bintext.TrailingDrop})
	_, err := c.HexDecode("zz")
	require.Error(t, err)
	_, err = c.Base64Encode([]byte{1})
	require.NoError(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "decode rejected", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "hex.decode", ctx["op"])
	assert.Contains(t, ctx["err"], "not a hex digit")

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, 1, entries[1].ContextMap()["dropped"])
}

func TestZapLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}
	l.Info("i", nil)
	l.Error("e", bintext.Fields{"err": errors.New("x")})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "x", entries[1].ContextMap()["err"])
}
