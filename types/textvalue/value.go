// File: value.go
// Title: Text Value
// Description: The Value type with construction, predicates, counting and
//              indexed access by character position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package textvalue

import (
	"strings"
	"weak"

	"github.com/msto63/texttype/utils/stringx"
)

// Value is a text string addressable by character position.
// The zero value is an empty Value ready to use.
type Value struct {
	content string

	// iterators whose cursor must follow removals; entries of collected
	// iterators are pruned by Remove
	iters map[weak.Pointer[Iterator]]struct{}
}

// New wraps content in a Value. Any string is accepted, including "".
func New(content string) *Value {
	return &Value{content: content}
}

// String returns the content verbatim.
func (v Value) String() string {
	return v.content
}

// Equal reports whether both values hold the same content.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.content == other.content
}

// StartsWith reports whether the content begins with prefix.
func (v *Value) StartsWith(prefix string) bool {
	return strings.HasPrefix(v.content, prefix)
}

// EndsWith reports whether the content ends with suffix.
func (v *Value) EndsWith(suffix string) bool {
	return strings.HasSuffix(v.content, suffix)
}

// Contains reports whether substr occurs anywhere in the content.
func (v *Value) Contains(substr string) bool {
	return strings.Contains(v.content, substr)
}

// Count returns the number of characters in the content.
func (v *Value) Count() int {
	return stringx.RuneCount(v.content)
}

// Exists reports whether i is a valid character position.
func (v *Value) Exists(i int) bool {
	_, _, ok := stringx.RuneSpan(v.content, i)
	return ok
}

// Get returns the character at position i wrapped in a new Value.
func (v *Value) Get(i int) (*Value, bool) {
	c, ok := stringx.RuneAt(v.content, i)
	if !ok {
		return nil, false
	}
	return New(c), true
}

// Set replaces the character at position i with value. value may hold any
// number of characters; the content grows or shrinks accordingly. Set is a
// no-op when i does not exist.
func (v *Value) Set(i int, value string) {
	if replaced, ok := stringx.ReplaceAt(v.content, i, value); ok {
		v.content = replaced
	}
}

// Remove deletes the character at position i and shifts the rest left.
// Attached iterators positioned at or after i move back by one. Remove is
// a no-op when i does not exist.
func (v *Value) Remove(i int) {
	removed, ok := stringx.RemoveAt(v.content, i)
	if !ok {
		return
	}
	v.content = removed

	for wp := range v.iters {
		it := wp.Value()
		if it == nil {
			delete(v.iters, wp)
			continue
		}
		// a copy of v shares the map but not the iterators
		if it.value != v {
			continue
		}
		if i <= it.cursor {
			it.cursor--
		}
	}
}

// Join concatenates values with separator between them. Nil entries are
// treated as empty content.
func Join(values []*Value, separator string) *Value {
	parts := make([]string, len(values))
	for i, value := range values {
		if value != nil {
			parts[i] = value.content
		}
	}
	return New(strings.Join(parts, separator))
}
