// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to route errors to log levels.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package error

// Severity ranks how serious an error is. Loggers map it to a level.
type Severity int

const (
	// SeverityLow covers invalid caller input and similar recoverable errors
	SeverityLow Severity = iota
	SeverityMedium
	// SeverityHigh covers failures such as an unreadable configuration file
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

// String returns the lower-case severity name.
func (s Severity) String() string {
	if s < SeverityLow || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText implements encoding.TextMarshaler so severities render by
// name in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ShouldAlert reports whether s is high or critical.
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
