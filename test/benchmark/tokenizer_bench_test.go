// Package benchmark contains Go benchmarks for the tokenizer, counter, and
// table renderer, measuring throughput and allocation behaviour.
package benchmark

import (
	"strings"
	"testing"

	"textkit/internal/wordcount/tokenizer"
)

var benchText = strings.Repeat(
	"Four score and seven years ago our fathers brought forth on this continent "+
		"a new nation, conceived in Liberty, and dedicated to the proposition "+
		"that all men are created equal. ", 50)

// BenchmarkTokenize measures tokenization throughput over a mid-sized
// document.
func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tokens := tokenizer.Tokenize(benchText)
		_ = tokens
	}
}

// BenchmarkTokenizeShort measures per-call overhead on small inputs.
func BenchmarkTokenizeShort(b *testing.B) {
	inputs := []struct {
		name string
		text string
	}{
		{"sentence", "The quick brown fox jumps over the lazy dog."},
		{"punctuated", "they're can't stop! that? o'clock..."},
		{"single_word", "word"},
	}
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = tokenizer.Tokenize(in.text)
			}
		})
	}
}
