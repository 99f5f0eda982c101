// Package logrus adapts a *logrus.Entry to bintext.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/bintext"
)

var _ bintext.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: logrus.NewEntry(l).WithField("component", "bintext")}
}

func (l LogrusLogger) Debug(msg string, f bintext.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f bintext.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f bintext.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f bintext.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f bintext.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
