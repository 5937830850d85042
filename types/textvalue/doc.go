// Package textvalue provides Value, a string with object-like ergonomics.
//
// Package: textvalue
// Title: Text Value Object
// Description: Wraps a string and exposes indexed character access,
//              iteration, counting, substring predicates, splitting and
//              serialization. All positions are character (rune)
//              positions, never byte offsets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Overview
//
// A Value behaves like a small mutable sequence of characters:
//
//	v := textvalue.New("any")
//	c, ok := v.Get(1)   // "n", true
//	_, ok = v.Get(3)    // nil, false
//	v.Set(2, "o")       // "ano"
//	v.Remove(1)         // "ao"
//	v.Count()           // 2
//
// Out-of-range reads report false, out-of-range writes are silent no-ops.
// Nothing in this package panics on a bad position.
//
// Iteration
//
// Each call to Iterator, All or Chars starts an independent cursor, so
// nested or interleaved iterations over the same Value do not disturb each
// other. Removing a character at or before an iterator's cursor moves that
// cursor back by one, which keeps a loop that deletes the current
// character from skipping the next one:
//
//	for i, c := range v.All() {
//	    if c.String() == " " {
//	        v.Remove(i)
//	    }
//	}
//
// Splitting
//
// Explode splits on a separator, " " by default. An empty separator is
// rejected with an INVALID_INPUT error; a Splitter configured with
// EmptySeparatorRunes splits into single characters instead.
//
// Encodings
//
// Value encodes as a plain string in every format: Serialize, binary
// (gob), text (TOML), JSON and YAML all carry the content verbatim.
//
// Thread Safety
//
// A Value is not safe for concurrent mutation. Iteration and mutation share
// the same instance state, so callers must serialize writers.
package textvalue
