// File: level.go
// Title: Log Levels
// Description: Level type with names, parsing and text encoding so levels
//              can be read straight from configuration files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package log

import (
	"strings"

	mdwerrors "github.com/msto63/texttype/core/errors"
)

// Level orders log messages by importance.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff disables every message.
	LevelOff
)

type levelName struct {
	name    string
	short   string
	aliases []string
}

var levelNames = [...]levelName{
	LevelTrace: {"trace", "TRC", []string{"trc"}},
	LevelDebug: {"debug", "DBG", []string{"dbg"}},
	LevelInfo:  {"info", "INF", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelOff:   {"off", "OFF", []string{"none", "disabled"}},
}

func (l Level) known() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case level name, e.g. "warn".
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three-letter tag used by the text formatter.
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether a message at l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l < LevelOff && l >= minLevel
}

// ParseLevel accepts a level name or one of its aliases, ignoring case and
// surrounding space. Unknown input yields LevelInfo and an INVALID_INPUT error.
func ParseLevel(level string) (Level, error) {
	needle := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levelNames {
		if n.name == needle {
			return Level(l), nil
		}
		for _, alias := range n.aliases {
			if alias == needle {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, mdwerrors.InvalidInput(mdwerrors.ModuleLog, "parse_level", level, "trace, debug, info, warn, error or off")
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// DefaultLevel is the level of loggers created by New.
func DefaultLevel() Level {
	return LevelInfo
}
