// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides character-position string helpers
//              used by the texttype value types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package stringx provides Unicode-aware helpers that address a string by
// character position instead of byte offset.
//
// Overview
//
// Go strings are indexed by byte. The helpers in this package translate a
// character position (the n-th rune produced by ranging over the string)
// into the byte span that holds it, and build read, replace and remove
// operations on top of that span:
//
//	stringx.RuneCount("héllo")         // 5
//	stringx.RuneAt("héllo", 1)         // "é", true
//	stringx.ReplaceAt("any", 2, "o")   // "ano", true
//	stringx.RemoveAt("any", 0)         // "ny", true
//	stringx.RuneAt("any", 3)           // "", false
//
// Invalid UTF-8
//
// A byte that does not start a valid UTF-8 sequence counts as one
// character, exactly as utf8.RuneCountInString and a range loop treat it.
// The helpers return the original bytes for such positions, so content
// passes through untouched and round trips stay lossless.
//
// Out-of-range positions
//
// Negative positions and positions at or past RuneCount are out of range.
// Every helper reports that through its boolean result and never panics.
//
// Thread Safety
//
// All exported functions are pure and safe for concurrent use.
package stringx
