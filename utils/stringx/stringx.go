// File: stringx.go
// Title: Character-Position String Utilities
// Description: Rune-aware counting, lookup, replacement and removal on
//              plain Go strings, preserving invalid UTF-8 bytes verbatim.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation with rune position helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// RuneCount returns the number of characters in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// RuneSpan returns the byte span [start, end) holding the character at
// position pos. ok is false when pos is out of range.
func RuneSpan(s string, pos int) (start, end int, ok bool) {
	if pos < 0 || pos >= len(s) {
		// a string never has more characters than bytes
		return 0, 0, false
	}

	// Fast path for ASCII prefixes
	if isASCIIPrefix(s, pos+1) {
		return pos, pos + 1, true
	}

	n := 0
	for start < len(s) {
		_, size := utf8.DecodeRuneInString(s[start:])
		if n == pos {
			return start, start + size, true
		}
		start += size
		n++
	}
	return 0, 0, false
}

// RuneAt returns the character at position pos as a string.
func RuneAt(s string, pos int) (string, bool) {
	start, end, ok := RuneSpan(s, pos)
	if !ok {
		return "", false
	}
	return s[start:end], true
}

// ReplaceAt replaces the character at position pos with repl, which may be
// of any length. The original string is returned unchanged with ok false
// when pos is out of range.
func ReplaceAt(s string, pos int, repl string) (string, bool) {
	start, end, ok := RuneSpan(s, pos)
	if !ok {
		return s, false
	}

	var builder strings.Builder
	builder.Grow(len(s) - (end - start) + len(repl))
	builder.WriteString(s[:start])
	builder.WriteString(repl)
	builder.WriteString(s[end:])
	return builder.String(), true
}

// RemoveAt removes the character at position pos, shifting the following
// characters left by one position.
func RemoveAt(s string, pos int) (string, bool) {
	start, end, ok := RuneSpan(s, pos)
	if !ok {
		return s, false
	}
	return s[:start] + s[end:], true
}

// SplitRunes splits s into one string per character. An empty s yields an
// empty slice.
func SplitRunes(s string) []string {
	parts := make([]string, 0, RuneCount(s))
	for start := 0; start < len(s); {
		_, size := utf8.DecodeRuneInString(s[start:])
		parts = append(parts, s[start:start+size])
		start += size
	}
	return parts
}

// isASCIIPrefix reports whether the first n bytes of s are ASCII
func isASCIIPrefix(s string, n int) bool {
	for i := 0; i < n; i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
