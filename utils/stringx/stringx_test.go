// File: stringx_test.go
// Title: Unit Tests for Character-Position Utilities
// Description: Table-driven tests covering ASCII, multi-byte and invalid
//              UTF-8 input for every stringx helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package stringx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRuneCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii", "any", 3},
		{"accented letters", "éàü", 3},
		{"japanese", "日本語", 3},
		{"emoji", "a😀b", 3},
		{"invalid byte", "a\xffb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RuneCount(tt.input); result != tt.expected {
				t.Errorf("RuneCount(%q) = %d; want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRuneAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		pos    int
		want   string
		wantOK bool
	}{
		{"first ascii", "any", 0, "a", true},
		{"last ascii", "any", 2, "y", true},
		{"past end", "any", 3, "", false},
		{"negative", "any", -1, "", false},
		{"empty string", "", 0, "", false},
		{"multi-byte", "héllo", 1, "é", true},
		{"after multi-byte", "héllo", 2, "l", true},
		{"emoji", "a😀b", 1, "😀", true},
		{"past end multi-byte", "日本語", 3, "", false},
		{"invalid byte preserved", "a\xffb", 1, "\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RuneAt(tt.input, tt.pos)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RuneAt(%q, %d) = %q, %v; want %q, %v", tt.input, tt.pos, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestReplaceAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		pos    int
		repl   string
		want   string
		wantOK bool
	}{
		{"single char", "any", 2, "o", "ano", true},
		{"multi char splice", "any", 1, "xyz", "axyzy", true},
		{"empty replacement", "any", 0, "", "ny", true},
		{"out of range", "any", 3, "o", "any", false},
		{"negative", "any", -2, "o", "any", false},
		{"multi-byte target", "für", 1, "u", "fur", true},
		{"multi-byte replacement", "fur", 1, "ü", "für", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReplaceAt(tt.input, tt.pos, tt.repl)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ReplaceAt(%q, %d, %q) = %q, %v; want %q, %v", tt.input, tt.pos, tt.repl, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRemoveAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		pos    int
		want   string
		wantOK bool
	}{
		{"first", "any", 0, "ny", true},
		{"middle", "ano", 1, "ao", true},
		{"last", "any", 2, "an", true},
		{"out of range", "any", 3, "any", false},
		{"multi-byte", "日本語", 1, "日語", true},
		{"single char", "a", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RemoveAt(tt.input, tt.pos)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RemoveAt(%q, %d) = %q, %v; want %q, %v", tt.input, tt.pos, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSplitRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"ascii", "any", []string{"a", "n", "y"}},
		{"mixed", "aé😀", []string{"a", "é", "😀"}},
		{"invalid byte", "a\xff", []string{"a", "\xff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitRunes(tt.input)); diff != "" {
				t.Errorf("SplitRunes(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestRuneAtMatchesRange(t *testing.T) {
	inputs := []string{"any long string", "Grüße, 世界!", "x\xc3y"}

	for _, input := range inputs {
		pos := 0
		for _, r := range input {
			got, ok := RuneAt(input, pos)
			if !ok {
				t.Fatalf("RuneAt(%q, %d) reported out of range", input, pos)
			}
			if r != '�' && got != string(r) {
				t.Errorf("RuneAt(%q, %d) = %q; want %q", input, pos, got, string(r))
			}
			pos++
		}
		if pos != RuneCount(input) {
			t.Errorf("range produced %d characters, RuneCount = %d", pos, RuneCount(input))
		}
	}
}
