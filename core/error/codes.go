// File: codes.go
// Title: Error Codes
// Description: Structured error codes and their registry of categories and
//              default severities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial code set

package error

// Code categorizes an error. Codes are stable strings suitable for logs.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

type codeInfo struct {
	category string
	severity Severity
}

var registry = map[Code]codeInfo{
	CodeUnknown:          {"generic", SeverityMedium},
	CodeInternal:         {"generic", SeverityCritical},
	CodeNotFound:         {"generic", SeverityLow},
	CodeInvalidInput:     {"validation", SeverityLow},
	CodeConfigError:      {"configuration", SeverityHigh},
	CodeInvalidConfig:    {"configuration", SeverityLow},
	CodeValidationFailed: {"validation", SeverityLow},
	CodeInvalidFormat:    {"validation", SeverityLow},
}

// String returns the code text.
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is a registered code.
func (c Code) IsValid() bool {
	_, ok := registry[c]
	return ok
}

// Category returns "validation", "configuration" or "generic".
// Unregistered codes are generic.
func (c Code) Category() string {
	if info, ok := registry[c]; ok {
		return info.category
	}
	return "generic"
}

// GetSeverityFromCode returns the default severity of code, medium for
// unregistered codes.
func GetSeverityFromCode(code Code) Severity {
	if info, ok := registry[code]; ok {
		return info.severity
	}
	return SeverityMedium
}
