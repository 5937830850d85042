// File: codec.go
// Title: Serialization
// Description: Serialize/Deserialize plus binary, text, JSON and YAML
//              encodings. Every encoding carries the content as a plain
//              string, never as an object.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package textvalue

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/texttype/core/errors"
)

// Serialize returns the content verbatim.
func (v *Value) Serialize() string {
	return v.content
}

// Deserialize overwrites the content with data verbatim.
func (v *Value) Deserialize(data string) {
	v.content = data
}

// MarshalBinary implements encoding.BinaryMarshaler, used by encoding/gob.
func (v Value) MarshalBinary() ([]byte, error) {
	return []byte(v.content), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) error {
	v.content = string(data)
	return nil
}

// MarshalText implements encoding.TextMarshaler, used by TOML encoders.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.content), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	v.content = string(text)
	return nil
}

// MarshalJSON encodes the content as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.content)
}

// UnmarshalJSON decodes a JSON string. null leaves the content unchanged;
// any other JSON type is an INVALID_FORMAT error.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var content string
	if err := json.Unmarshal(data, &content); err != nil {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleTextValue, "unmarshal_json", string(data), "JSON string", err)
	}
	v.content = content
	return nil
}

// MarshalYAML encodes the content as a YAML string scalar.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.content, nil
}

// UnmarshalYAML decodes any YAML scalar as its literal text. A null scalar
// leaves the content unchanged; mappings and sequences are an
// INVALID_FORMAT error.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleTextValue, "unmarshal_yaml", node.Tag, "YAML scalar", nil)
	}
	if node.Tag == "!!null" {
		return nil
	}
	v.content = node.Value
	return nil
}
