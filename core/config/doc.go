// Package config loads texttype settings from TOML or YAML files.
//
// Package: config
// Title: Configuration Loading
// Description: Reads TOML (BurntSushi/toml) or YAML (gopkg.in/yaml.v3)
//              documents into a dot-addressable key space with optional
//              environment variable overrides and default values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Keys use dot notation. With EnvPrefix "TEXTTYPE", the key
// "textvalue.separator" can be overridden by TEXTTYPE_TEXTVALUE_SEPARATOR.
//
//	cfg, err := config.Load("texttype.toml")
//	if err != nil {
//	    return err
//	}
//	sep := cfg.GetString("textvalue.separator", " ")
package config
