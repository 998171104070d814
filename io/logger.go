// Package argvio provides the leveled logger used by go-argv for
// classification tracing and by example programs for their own output.
package argvio

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                  // ● ◆ ▲ ✗
	LogFormatPlain                    // No prefix
)

// Logger provides leveled logging with customizable formatting. Methods are
// safe for concurrent use.
type Logger struct {
	mu         sync.Mutex
	w          io.Writer
	level      LogLevel
	format     LogFormat
	withTime   bool
	timeFormat string
}

// NewLogger creates a logger writing to w at LevelInfo in tagged format
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		w:          w,
		level:      LevelInfo,
		format:     LogFormatTagged,
		timeFormat: "15:04:05",
	}
}

// Level sets the minimum level that is emitted
func (l *Logger) Level(level LogLevel) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	return l
}

// Format sets the message format
func (l *Logger) Format(format LogFormat) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = format
	return l
}

// WithTime enables or disables timestamps
func (l *Logger) WithTime(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.withTime = enabled
	return l
}

// TimeFormat sets the timestamp layout used when timestamps are enabled
func (l *Logger) TimeFormat(layout string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timeFormat = layout
	return l
}

// Debugf logs at debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs at info level
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs at warning level
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarning, format, args...)
}

// Errorf logs at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

// symbolPrefixes maps levels to Unicode symbol prefixes (no emoji)
var symbolPrefixes = map[LogLevel]string{
	LevelDebug:   "●", // U+25CF Black Circle
	LevelInfo:    "◆", // U+25C6 Black Diamond
	LevelWarning: "▲", // U+25B2 Black Up-Pointing Triangle
	LevelError:   "✗", // U+2717 Ballot X
}

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.w == nil {
		return
	}

	var prefix string
	switch l.format {
	case LogFormatTagged:
		prefix = "[" + level.String() + "] "
	case LogFormatSymbols:
		prefix = symbolPrefixes[level] + " "
	case LogFormatPlain:
	}

	if l.withTime {
		prefix = time.Now().Format(l.timeFormat) + " " + prefix
	}

	fmt.Fprintf(l.w, prefix+format+"\n", args...)
}
