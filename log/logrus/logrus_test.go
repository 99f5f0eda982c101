package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/bintext"
)

func TestLogrusLoggerThroughCodec(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	c := bintext.MustNew(bintext.Options{Logger: l})
	_, err := c.Base64Decode("AAA")
	require.Error(t, err)

	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, e.Level)
	assert.Equal(t, "decode rejected", e.Message)
	assert.Equal(t, "base64.decode", e.Data["op"])
	assert.Equal(t, "bintext", e.Data["component"])
}

func TestLogrusLoggerLevels(t *testing.T) {
	base, hook := test.NewNullLogger()
	l := New(base)
	l.Debug("hidden", nil) // default level is Info
	l.Warn("w", bintext.Fields{"k": 1})
	l.Error("e", nil)

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.WarnLevel, hook.AllEntries()[0].Level)
	assert.Equal(t, 1, hook.AllEntries()[0].Data["k"])
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
