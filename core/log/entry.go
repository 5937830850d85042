// File: entry.go
// Title: Log Entry
// Description: Entry and Fields, the data every formatter renders.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package log

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// Entry is one log record.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields holds structured key-value data attached to an entry.
type Fields map[string]interface{}

// Field returns a single key-value pair.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Int returns a single integer field.
func Int(key string, value int) Fields {
	return Field(key, value)
}

// String returns a single string field.
func String(key, value string) Fields {
	return Field(key, value)
}

// Err returns the error under the "error" key.
func Err(err error) Fields {
	return Field("error", err)
}

// Merge returns a new Fields with the pairs of f and other; other wins.
// The result is never nil.
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	maps.Copy(result, f)
	maps.Copy(result, other)
	return result
}

// Sorted yields the pairs in lexical key order.
func (f Fields) Sorted() iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		for _, k := range slices.Sorted(maps.Keys(f)) {
			if !yield(k, f[k]) {
				return
			}
		}
	}
}

func newEntry(level Level, message, logger string, err error, fieldSets ...Fields) *Entry {
	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    logger,
		Fields:    make(Fields),
		Error:     err,
	}
	for _, fields := range fieldSets {
		maps.Copy(entry.Fields, fields)
	}
	return entry
}
