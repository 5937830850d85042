// File: benchmark_test.go
// Title: Performance Benchmarks for textvalue
// Description: Benchmarks for indexed access, iteration and splitting on
//              ASCII and multi-byte content.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial benchmark implementation

package textvalue

import (
	"strings"
	"testing"
)

var (
	benchASCII   = strings.Repeat("any long string ", 16)
	benchUnicode = strings.Repeat("Grüße 世界 ", 16)
)

func BenchmarkGet(b *testing.B) {
	v := New(benchASCII)
	n := v.Count()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Get(i % n)
	}
}

func BenchmarkGetUnicode(b *testing.B) {
	v := New(benchUnicode)
	n := v.Count()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Get(i % n)
	}
}

func BenchmarkAll(b *testing.B) {
	v := New(benchUnicode)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range v.All() {
		}
	}
}

func BenchmarkExplode(b *testing.B) {
	v := New(benchASCII)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Explode()
	}
}

func BenchmarkSet(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := New(benchUnicode)
		v.Set(7, "ss")
	}
}
