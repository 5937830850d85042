// File: splitter_test.go
// Title: Splitting Tests
// Description: Tests for Explode, the empty separator policies and building
//              a Splitter from configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package textvalue

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/texttype/core/config"
	mdwerror "github.com/msto63/texttype/core/error"
	mdwerrors "github.com/msto63/texttype/core/errors"
	mdwlog "github.com/msto63/texttype/core/log"
)

func contents(values []*Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func TestExplode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator []string
		want      []string
	}{
		{"default separator", longText, nil, []string{"any", "long", "string"}},
		{"leading and trailing separator", " long ", nil, []string{"", "long", ""}},
		{"no occurrence", shortText, []string{"x"}, []string{"any"}},
		{"empty content", "", nil, []string{""}},
		{"adjacent separators", "a,,b", []string{","}, []string{"a", "", "b"}},
		{"multi-char separator", "abab", []string{"ab"}, []string{"", "", ""}},
		{"multi-byte separator", "x→y→z", []string{"→"}, []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.input).Explode(tt.separator...)
			if err != nil {
				t.Fatalf("Explode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, contents(got)); diff != "" {
				t.Errorf("Explode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExplodeJoinRoundTrip(t *testing.T) {
	for _, input := range []string{longText, " long ", "", "a  b"} {
		parts, err := New(input).Explode()
		if err != nil {
			t.Fatalf("Explode(%q) error = %v", input, err)
		}
		if got := Join(parts, DefaultSeparator).String(); got != input {
			t.Errorf("Join(Explode(%q)) = %q", input, got)
		}
	}
}

func TestExplodeEmptySeparator(t *testing.T) {
	got, err := New(shortText).Explode("")
	if err == nil {
		t.Fatal("Explode(\"\") should fail")
	}
	if got != nil {
		t.Errorf("Explode(\"\") = %v, want nil", got)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
	if !mdwerrors.IsModuleOperation(err, mdwerrors.ModuleTextValue, "explode") {
		t.Errorf("error not attributed to textvalue.explode: %v", err)
	}
}

func TestExplodeTooManySeparators(t *testing.T) {
	got, err := New("a-b c").Explode("-", " ")
	if err == nil {
		t.Fatal("Explode with two separators should fail")
	}
	if got != nil {
		t.Errorf("Explode() = %v, want nil", got)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
	if !mdwerrors.IsModuleOperation(err, mdwerrors.ModuleTextValue, "explode") {
		t.Errorf("error not attributed to textvalue.explode: %v", err)
	}
}

func TestSplitterRunesPolicy(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatText,
		Output: &buf,
	})

	s := &Splitter{EmptySeparator: EmptySeparatorRunes, Logger: logger}

	got, err := s.Split(New("añy"))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "ñ", "y"}, contents(got)); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}

	got, err = s.Split(New(""))
	if err != nil {
		t.Fatalf("Split(empty) error = %v", err)
	}
	if diff := cmp.Diff([]string{""}, contents(got)); diff != "" {
		t.Errorf("Split(empty) mismatch (-want +got):\n%s", diff)
	}

	output := buf.String()
	if !strings.Contains(output, "{textvalue}") || !strings.Contains(output, "splitting per character") {
		t.Errorf("missing debug output, got %q", output)
	}
}

func TestSplitterNonEmptySeparatorIgnoresPolicy(t *testing.T) {
	s := &Splitter{Separator: ",", EmptySeparator: EmptySeparatorRunes, Logger: mdwlog.Discard()}

	got, err := s.Split(New("a,b"))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, contents(got)); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptySeparatorPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    EmptySeparatorPolicy
		wantErr bool
	}{
		{"reject", EmptySeparatorReject, false},
		{" REJECT ", EmptySeparatorReject, false},
		{"error", EmptySeparatorReject, false},
		{"runes", EmptySeparatorRunes, false},
		{"Chars", EmptySeparatorRunes, false},
		{"split", EmptySeparatorReject, true},
		{"", EmptySeparatorReject, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEmptySeparatorPolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEmptySeparatorPolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEmptySeparatorPolicy(%q) = %s, want %s", tt.input, got, tt.want)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
				t.Errorf("error code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeValidationFailed)
			}
		})
	}
}

func TestEmptySeparatorPolicyString(t *testing.T) {
	if EmptySeparatorReject.String() != "reject" || EmptySeparatorRunes.String() != "runes" {
		t.Error("unexpected policy names")
	}
	if EmptySeparatorPolicy(42).String() != "unknown" {
		t.Error("out of range policy should be unknown")
	}
}

func TestNewSplitterFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		format        config.Format
		wantSeparator string
		wantPolicy    EmptySeparatorPolicy
	}{
		{
			name:          "missing section uses defaults",
			content:       "[other]\nkey = 1\n",
			format:        config.FormatTOML,
			wantSeparator: DefaultSeparator,
			wantPolicy:    EmptySeparatorReject,
		},
		{
			name:          "toml separator",
			content:       "[textvalue]\nseparator = \",\"\n",
			format:        config.FormatTOML,
			wantSeparator: ",",
			wantPolicy:    EmptySeparatorReject,
		},
		{
			name:          "toml empty separator with runes",
			content:       "[textvalue]\nseparator = \"\"\nempty_separator = \"runes\"\n",
			format:        config.FormatTOML,
			wantSeparator: "",
			wantPolicy:    EmptySeparatorRunes,
		},
		{
			name:          "yaml",
			content:       "textvalue:\n  separator: \";\"\n  empty_separator: reject\n",
			format:        config.FormatYAML,
			wantSeparator: ";",
			wantPolicy:    EmptySeparatorReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}

			s, err := NewSplitterFromConfig(cfg)
			if err != nil {
				t.Fatalf("NewSplitterFromConfig() error = %v", err)
			}
			if s.Separator != tt.wantSeparator {
				t.Errorf("Separator = %q, want %q", s.Separator, tt.wantSeparator)
			}
			if s.EmptySeparator != tt.wantPolicy {
				t.Errorf("EmptySeparator = %s, want %s", s.EmptySeparator, tt.wantPolicy)
			}
		})
	}
}

func TestNewSplitterFromConfigInvalidPolicy(t *testing.T) {
	cfg := config.New(map[string]interface{}{
		"textvalue": map[string]interface{}{"empty_separator": "sometimes"},
	})

	s, err := NewSplitterFromConfig(cfg)
	if err == nil {
		t.Fatal("expected error for unknown policy")
	}
	if s != nil {
		t.Errorf("NewSplitterFromConfig() = %v, want nil", s)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("error code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeValidationFailed)
	}
}

func TestNewSplitterFromConfigLogger(t *testing.T) {
	cfg, err := config.LoadFromString("[log]\nlevel = \"debug\"\n", config.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	s, err := NewSplitterFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewSplitterFromConfig() error = %v", err)
	}
	if s.Logger == nil || s.Logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("Logger not configured from log.level")
	}

	cfg.Set("log.level", "loud")
	if _, err := NewSplitterFromConfig(cfg); err == nil {
		t.Error("invalid log.level should fail")
	}
}

func TestNewSplitterFromNilConfig(t *testing.T) {
	s, err := NewSplitterFromConfig(nil)
	if err != nil {
		t.Fatalf("NewSplitterFromConfig(nil) error = %v", err)
	}
	if s.Separator != DefaultSeparator || s.EmptySeparator != EmptySeparatorReject {
		t.Errorf("unexpected defaults: %+v", s)
	}
}
