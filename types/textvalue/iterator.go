// File: iterator.go
// Title: Character Iteration
// Description: External iterator and range-over-func sequences yielding one
//              Value per character.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package textvalue

import (
	"iter"
	"weak"
)

// Iterator walks the characters of a Value with its own cursor.
//
//	for it := v.Iterator(); it.Valid(); it.Next() {
//	    c, _ := it.Current()
//	    fmt.Println(it.Key(), c)
//	}
//
// An iterator stays attached to its Value, and follows removals, until
// Valid reports false or Close is called. Rewind attaches it again. An
// abandoned iterator is released once it is garbage collected.
type Iterator struct {
	value    *Value
	cursor   int
	attached bool
}

// Iterator returns a new iterator positioned at the first character.
func (v *Value) Iterator() *Iterator {
	it := &Iterator{value: v}
	it.Rewind()
	return it
}

// Rewind resets the cursor to the first character.
func (it *Iterator) Rewind() {
	it.cursor = 0
	it.attach()
}

// Valid reports whether the cursor is before the end of the content.
func (it *Iterator) Valid() bool {
	if it.cursor < it.value.Count() {
		return true
	}
	it.detach()
	return false
}

// Current returns the character under the cursor.
func (it *Iterator) Current() (*Value, bool) {
	return it.value.Get(it.cursor)
}

// Key returns the cursor position.
func (it *Iterator) Key() int {
	return it.cursor
}

// Next advances the cursor by one character.
func (it *Iterator) Next() {
	it.cursor++
}

// Close detaches the iterator from its Value. It is only needed when an
// iteration is abandoned before Valid reports false.
func (it *Iterator) Close() {
	it.detach()
}

func (it *Iterator) attach() {
	if it.attached {
		return
	}
	if it.value.iters == nil {
		it.value.iters = make(map[weak.Pointer[Iterator]]struct{})
	}
	it.value.iters[weak.Make(it)] = struct{}{}
	it.attached = true
}

func (it *Iterator) detach() {
	if !it.attached {
		return
	}
	delete(it.value.iters, weak.Make(it))
	it.attached = false
}

// All returns a sequence of (position, character) pairs. Each range over
// the sequence uses a fresh cursor.
func (v *Value) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		it := v.Iterator()
		defer it.Close()

		for ; it.Valid(); it.Next() {
			c, ok := it.Current()
			if !ok {
				// cursor moved before the start by a removal at 0
				continue
			}
			if !yield(it.Key(), c) {
				return
			}
		}
	}
}

// Chars returns a sequence of the characters of v.
func (v *Value) Chars() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, c := range v.All() {
			if !yield(c) {
				return
			}
		}
	}
}
