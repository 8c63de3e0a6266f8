package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/logger"
)

// NewLogger adapts a logrus logger to the internal diagnostics
// interface, so the registry and store warnings ride the same logger
// the application already configured.
func NewLogger(l *logrus.Logger) logger.Logger {
	return &diagLogger{logger: l}
}

type diagLogger struct {
	logger *logrus.Logger
}

func (d *diagLogger) Debug(format string, args ...interface{}) {
	d.logger.Debugf(format, args...)
}

func (d *diagLogger) Info(format string, args ...interface{}) {
	d.logger.Infof(format, args...)
}

func (d *diagLogger) Warn(format string, args ...interface{}) {
	d.logger.Warnf(format, args...)
}

func (d *diagLogger) Error(format string, args ...interface{}) {
	d.logger.Errorf(format, args...)
}
