package logsink

import "time"

// Log level values carried on records.
const (
	LevelTrace = "trace"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

// IsErrorLevel reports whether a level is error-class for admission
// purposes (the always-log-errors override applies to these).
func IsErrorLevel(level string) bool {
	return level == LevelError || level == LevelFatal
}

// Record is the fire-and-forget structured payload handed to a sink.
// The core never constructs records itself; they share the profiling
// admission gate on the way in. Timestamp is rendered ISO-8601 by the
// sink.
type Record struct {
	Level     string
	Message   string
	Context   string
	Timestamp time.Time
	Data      map[string]interface{}
}

// Sink is the boundary to the log transport collaborator. Formatting,
// persistence, rotation and color palettes live behind it; the core
// only delivers finished payloads. WriteReport receives a rendered
// profile report ready for display.
type Sink interface {
	WriteRecord(record Record)
	WriteReport(report string)
}
