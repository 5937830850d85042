// File: format.go
// Title: Log Formatters
// Description: JSON, text and logfmt renderings of log entries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mdwerrors "github.com/msto63/texttype/core/errors"
)

// Format selects one of the built-in formatters.
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatLogfmt
)

var formatNames = [...]string{
	FormatJSON:   "json",
	FormatText:   "text",
	FormatLogfmt: "logfmt",
}

// String returns the configuration name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses "json", "text" or "logfmt". Unknown input yields
// FormatJSON and an INVALID_INPUT error.
func ParseFormat(format string) (Format, error) {
	needle := strings.ToLower(strings.TrimSpace(format))
	for f, name := range formatNames {
		if name == needle {
			return Format(f), nil
		}
	}
	return FormatJSON, mdwerrors.InvalidInput(mdwerrors.ModuleLog, "parse_format", format, "json, text or logfmt")
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Formatter renders an entry as one newline-terminated record.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(entry *Entry) ([]byte, error)

// Format calls fn(entry).
func (fn FormatterFunc) Format(entry *Entry) ([]byte, error) {
	return fn(entry)
}

// GetFormatter returns the built-in formatter for format, JSON when unknown.
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return FormatterFunc(formatText)
	case FormatLogfmt:
		return FormatterFunc(formatLogfmt)
	default:
		return FormatterFunc(formatJSON)
	}
}

// formatJSON writes the fields at top level next to timestamp, level,
// message and logger. A structured error is added as error_details.
func formatJSON(entry *Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		record[k] = v
	}

	record["timestamp"] = entry.Timestamp.Format(time.RFC3339)
	record["level"] = entry.Level.String()
	record["message"] = entry.Message
	if entry.Logger != "" {
		record["logger"] = entry.Logger
	}

	if entry.Error != nil {
		record["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				record["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// formatText writes "15:04:05 [INF] {name} message [k=v ...] error=...".
func formatText(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(time.TimeOnly))
	fmt.Fprintf(&b, " [%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		first := true
		for k, v := range entry.Fields.Sorted() {
			if !first {
				b.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&b, "%s=%v", k, v)
		}
		b.WriteString("]")
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// formatLogfmt writes space separated key=value pairs; strings are quoted.
func formatLogfmt(entry *Entry) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		entry.Timestamp.Format(time.RFC3339), entry.Level, entry.Message)
	if entry.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", entry.Logger)
	}

	for k, v := range entry.Fields.Sorted() {
		switch value := v.(type) {
		case string:
			fmt.Fprintf(&b, " %s=%q", k, value)
		case error:
			fmt.Fprintf(&b, " %s=%q", k, value.Error())
		default:
			fmt.Fprintf(&b, " %s=%v", k, value)
		}
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
