// File: splitter.go
// Title: Splitting
// Description: Explode and the configurable Splitter that controls how an
//              empty separator is handled.
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

	"github.com/msto63/texttype/core/config"
	mdwerrors "github.com/msto63/texttype/core/errors"
	mdwlog "github.com/msto63/texttype/core/log"
	"github.com/msto63/texttype/utils/stringx"
)

// DefaultSeparator is used by Explode when no separator is given.
const DefaultSeparator = " "

// Configuration keys read by NewSplitterFromConfig
const (
	ConfigKeySeparator      = "textvalue.separator"
	ConfigKeyEmptySeparator = "textvalue.empty_separator"
)

// EmptySeparatorPolicy decides what splitting on "" means.
type EmptySeparatorPolicy int

const (
	// EmptySeparatorReject fails with an INVALID_INPUT error
	EmptySeparatorReject EmptySeparatorPolicy = iota

	// EmptySeparatorRunes splits into one value per character
	EmptySeparatorRunes
)

// String returns the configuration name of the policy
func (p EmptySeparatorPolicy) String() string {
	switch p {
	case EmptySeparatorReject:
		return "reject"
	case EmptySeparatorRunes:
		return "runes"
	default:
		return "unknown"
	}
}

// ParseEmptySeparatorPolicy parses "reject" or "runes", case-insensitively.
func ParseEmptySeparatorPolicy(s string) (EmptySeparatorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject", "error":
		return EmptySeparatorReject, nil
	case "runes", "chars":
		return EmptySeparatorRunes, nil
	default:
		return EmptySeparatorReject, mdwerrors.ValidationFailed(mdwerrors.ModuleTextValue, "empty_separator", s, "expected reject or runes")
	}
}

// Splitter splits values on a fixed separator.
type Splitter struct {
	Separator      string
	EmptySeparator EmptySeparatorPolicy

	// Logger receives debug diagnostics; nil means the package default logger.
	Logger *mdwlog.Logger
}

// NewSplitter returns a Splitter on separator that rejects an empty separator.
func NewSplitter(separator string) *Splitter {
	return &Splitter{Separator: separator}
}

// NewSplitterFromConfig builds a Splitter from the textvalue.separator and
// textvalue.empty_separator keys. Missing keys fall back to DefaultSeparator
// and EmptySeparatorReject. An explicitly empty separator is kept. The
// log.level and log.format keys configure the Splitter's logger.
func NewSplitterFromConfig(cfg *config.Config) (*Splitter, error) {
	s := NewSplitter(DefaultSeparator)
	if cfg == nil {
		return s, nil
	}

	if cfg.Has(ConfigKeySeparator) {
		s.Separator = cfg.GetString(ConfigKeySeparator)
	}

	if cfg.Has(ConfigKeyEmptySeparator) {
		policy, err := ParseEmptySeparatorPolicy(cfg.GetString(ConfigKeyEmptySeparator))
		if err != nil {
			return nil, err
		}
		s.EmptySeparator = policy
	}

	logger, err := cfg.Logger(nil)
	if err != nil {
		return nil, err
	}
	s.Logger = logger

	return s, nil
}

// Split splits v on every non-overlapping occurrence of the separator, left
// to right. Empty fragments are kept. When the separator does not occur the
// result holds a single value with the whole content.
func (s *Splitter) Split(v *Value) ([]*Value, error) {
	if s.Separator != "" {
		return wrapAll(strings.Split(v.content, s.Separator)), nil
	}

	if s.EmptySeparator != EmptySeparatorRunes {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleTextValue, "explode", s.Separator, "non-empty separator")
	}

	s.logger().Debug("empty separator, splitting per character", mdwlog.Int("count", v.Count()))

	if v.content == "" {
		return []*Value{New("")}, nil
	}
	return wrapAll(stringx.SplitRunes(v.content)), nil
}

func (s *Splitter) logger() *mdwlog.Logger {
	if s.Logger != nil {
		return s.Logger.WithName(mdwerrors.ModuleTextValue)
	}
	return mdwlog.GetDefault().WithName(mdwerrors.ModuleTextValue)
}

// Explode splits the content on separator, DefaultSeparator when omitted.
// separator is an optional single argument: passing more than one, or an
// empty separator, returns an INVALID_INPUT error.
func (v *Value) Explode(separator ...string) ([]*Value, error) {
	sep := DefaultSeparator
	switch len(separator) {
	case 0:
	case 1:
		sep = separator[0]
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleTextValue, "explode", separator, "at most one separator")
	}
	return NewSplitter(sep).Split(v)
}

func wrapAll(parts []string) []*Value {
	values := make([]*Value, len(parts))
	for i, part := range parts {
		values[i] = New(part)
	}
	return values
}
