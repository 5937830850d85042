// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder plus the standard constructors and
//              extractors shared by all texttype modules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/texttype/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextValue = "textvalue"
	ModuleConfig    = "config"
	ModuleLog       = "log"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
		code:     mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	op := eb.module
	if eb.operation != "" {
		op = eb.module + "." + eb.operation
	}

	return err.
		WithCode(eb.code).
		WithSeverity(eb.severity).
		WithOperation(op).
		WithDetails(eb.details)
}

// standard builds the common low severity module errors. kv holds detail
// key-value pairs.
func standard(module, operation string, code mdwerror.Code, message string, cause error, kv ...interface{}) *mdwerror.Error {
	eb := NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(code).
		Severity(mdwerror.GetSeverityFromCode(code))
	for i := 0; i+1 < len(kv); i += 2 {
		eb.Detail(fmt.Sprint(kv[i]), kv[i+1])
	}
	return eb.Build()
}

// InvalidInput reports input that an operation does not accept.
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return standard(module, operation, mdwerror.CodeInvalidInput,
		fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected), nil,
		"input", input, "expected", expected)
}

// InvalidFormat reports encoded data that could not be decoded. cause may be nil.
func InvalidFormat(module, operation string, input interface{}, expectedFormat string, cause error) *mdwerror.Error {
	return standard(module, operation, mdwerror.CodeInvalidFormat,
		fmt.Sprintf("invalid format in %s.%s: expected %s", module, operation, expectedFormat), cause,
		"input", input, "expected_format", expectedFormat)
}

// ValidationFailed reports a field value rejected for reason. The
// operation is recorded as validate_<field>.
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	operation := "validate_" + field
	return standard(module, operation, mdwerror.CodeValidationFailed,
		fmt.Sprintf("%s.%s: validation failed for field %s: %s", module, operation, field, reason), nil,
		"field", field, "value", value, "reason", reason)
}

// NotFound reports a missing item such as a configuration file.
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s: %v", module, operation, identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
