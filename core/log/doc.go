// Package log provides leveled, structured logging for texttype.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with immutable With* derivation,
//              JSON, text and logfmt formatters, and severity-aware logging
//              of *mdwerror.Error values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger.WithName("textvalue").Debug("splitting per character", log.Int("count", 3))
//
// Loggers are safe for concurrent use. Every With* call returns a new
// logger and leaves the receiver untouched.
package log
