// Package predict implements the CSS-specific boundary predictor: given a
// byte offset into a preprocessed buffer, guess where the next token
// starts. It has no speculation-framework knowledge of its own; it is the
// predictor half fed into internal/spec's primitives by internal/partition.
package predict

import "github.com/tetratelabs/speculss/internal/csslex"

// Lookback is the number of bytes the predictor rewinds before lexing
// forward, chosen empirically to exceed the longest non-restart-safe
// suffix that matters in CSS (escapes, "url(", numeric exponents).
const Lookback = 10

// NextTokenStart returns the starting byte offset of the first token at or
// after offset. It restarts a fresh Tokenizer Lookback bytes earlier (or at
// 0) and steps forward with Next until the tokenizer's position is >=
// offset, returning that position.
//
// It is idempotent (NextTokenStart(b, NextTokenStart(b, k)) ==
// NextTokenStart(b, k)) and lower-bounded (>= offset whenever offset <=
// buf.Len(); a larger offset yields buf.Len()), but it is not
// guaranteed to be the position the sequential tokenizer would actually be
// at when a real token boundary falls there — incorrect predictions are
// caught by validation in internal/partition, never here.
func NextTokenStart(buf *csslex.Buffer, offset int) int {
	start := offset - Lookback
	if start < 0 {
		start = 0
	}
	tok := csslex.NewTokenizer(buf)
	tok.Position = start
	for tok.Position < offset {
		if _, ok := tok.Next(); !ok {
			break
		}
	}
	return tok.Position
}
