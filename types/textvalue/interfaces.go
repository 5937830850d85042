// File: interfaces.go
// Title: Capability Interfaces
// Description: The independent capabilities a Value provides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package textvalue

import (
	"encoding"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Sized reports a character count.
type Sized interface {
	Count() int
}

// Indexed gives read and write access by character position.
type Indexed interface {
	Exists(i int) bool
	Get(i int) (*Value, bool)
	Set(i int, value string)
	Remove(i int)
}

// Iterable produces independent character iterations.
type Iterable interface {
	Iterator() *Iterator
	All() iter.Seq2[int, *Value]
}

// Serializable round trips through a string payload.
type Serializable interface {
	Serialize() string
	Deserialize(data string)
}

var (
	_ Sized        = (*Value)(nil)
	_ Indexed      = (*Value)(nil)
	_ Iterable     = (*Value)(nil)
	_ Serializable = (*Value)(nil)

	_ fmt.Stringer               = Value{}
	_ json.Marshaler             = Value{}
	_ json.Unmarshaler           = (*Value)(nil)
	_ encoding.TextMarshaler     = Value{}
	_ encoding.TextUnmarshaler   = (*Value)(nil)
	_ encoding.BinaryMarshaler   = Value{}
	_ encoding.BinaryUnmarshaler = (*Value)(nil)
	_ yaml.Marshaler             = Value{}
	_ yaml.Unmarshaler           = (*Value)(nil)
)
