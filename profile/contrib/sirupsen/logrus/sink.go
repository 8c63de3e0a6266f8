package logrus

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Yuzu02/YuuLogger/profile/logsink"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/profile_sampler"
)

// NewSink wraps a logrus logger as the log-sink boundary. Every record
// passes the shared admission gate before it is written: error-class
// records bypass the rate when AlwaysLogErrors is set, everything else
// draws against the general rate. A nil sampler admits everything.
func NewSink(l *logrus.Logger, sampler *profile_sampler.Sampler) logsink.Sink {
	return &Sink{
		logger:  l,
		sampler: sampler,
	}
}

type Sink struct {
	logger  *logrus.Logger
	sampler *profile_sampler.Sampler
}

func (s *Sink) WriteRecord(record logsink.Record) {
	if !s.admit(record.Level) {
		return
	}
	ts := record.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	fields := logrus.Fields{
		"timestamp": ts.Format(time.RFC3339Nano),
	}
	if record.Context != "" {
		fields["context"] = record.Context
	}
	if len(record.Data) != 0 {
		fields["data"] = record.Data
	}
	entry := s.logger.WithFields(fields)
	switch record.Level {
	case logsink.LevelTrace:
		entry.Trace(record.Message)
	case logsink.LevelDebug:
		entry.Debug(record.Message)
	case logsink.LevelWarn:
		entry.Warn(record.Message)
	case logsink.LevelError:
		entry.Error(record.Message)
	case logsink.LevelFatal:
		// logrus Fatal exits the process; a sink must never take the
		// host application down
		entry.WithField("level", logsink.LevelFatal).Error(record.Message)
	default:
		entry.Info(record.Message)
	}
}

func (s *Sink) WriteReport(report string) {
	s.logger.Info(report)
}

func (s *Sink) admit(level string) bool {
	if s.sampler == nil {
		return true
	}
	if logsink.IsErrorLevel(level) {
		return s.sampler.ShouldSampleError()
	}
	return s.sampler.ShouldSample(profile_sampler.KindGeneral)
}
