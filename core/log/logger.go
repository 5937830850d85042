// File: logger.go
// Title: Structured Logger
// Description: Leveled logger with persistent context fields and
//              severity-aware logging of structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"

	mdwerror "github.com/msto63/texttype/core/error"
)

// Logger writes structured entries at or above its level. A Logger is
// never modified after construction; the With* methods derive new ones.
type Logger struct {
	level     Level
	formatter Formatter
	out       *lockedWriter
	name      string
	fields    Fields
}

// lockedWriter serializes writes of every logger derived from one output.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) write(p []byte) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = lw.w.Write(p)
}

// Config configures NewWithConfig. A nil Output means os.Stdout.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New returns an info level JSON logger on os.Stdout.
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig returns a logger built from config.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		out:       &lockedWriter{w: output},
		name:      config.Name,
		fields:    make(Fields),
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

func (l *Logger) derive(change func(*Logger)) *Logger {
	clone := *l
	clone.fields = l.fields.Merge(nil)
	change(&clone)
	return &clone
}

// WithLevel returns a logger with a different minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat returns a logger rendering with a different format.
func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.formatter = GetFormatter(format) })
}

// WithFormatter returns a logger rendering with formatter.
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	return l.derive(func(c *Logger) { c.formatter = formatter })
}

// WithOutput returns a logger writing to output.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.out = &lockedWriter{w: output} })
}

// WithName returns a logger that tags entries with name.
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField returns a logger that adds key=value to every entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Field(key, value))
}

// WithFields returns a logger that adds fields to every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields = c.fields.Merge(fields) })
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields) }

// ErrorWithErr logs message at error level with err attached.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// LogError logs err using its own message. A *mdwerror.Error is logged
// with its code, severity, operation and details as fields, at info for
// low severity, warn for medium and error above. Other errors log at
// error level. nil is ignored.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":      mdwErr.Code(),
		"error_severity":  mdwErr.Severity().String(),
		"error_operation": mdwErr.Operation(),
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	l.log(levelForSeverity(mdwErr.Severity()), err.Error(), err, []Fields{fields})
}

func levelForSeverity(severity mdwerror.Severity) Level {
	switch severity {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// IsLevelEnabled reports whether messages at level would be written.
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the minimum level.
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name, "" when unnamed.
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := newEntry(level, message, l.name, err, append([]Fields{l.fields}, fields...)...)

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.out.write(formatted)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the package default logger.
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package default logger; nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// Debug logs with the default logger.
func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }

// Info logs with the default logger.
func Info(message string, fields ...Fields) { GetDefault().Info(message, fields...) }

// Warn logs with the default logger.
func Warn(message string, fields ...Fields) { GetDefault().Warn(message, fields...) }

// Error logs with the default logger.
func Error(message string, fields ...Fields) { GetDefault().Error(message, fields...) }
