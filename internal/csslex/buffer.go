// Package csslex implements a restartable streaming tokenizer for the CSS
// Syntax Module tokenization grammar (https://drafts.csswg.org/css-syntax/#tokenization).
//
// The tokenizer is the sequential baseline used by the rest of this module
// and also the per-partition worker driven by internal/partition: it can be
// constructed at position 0 or restarted at any byte offset inside the
// buffer, since no state survives across a call to Next other than the
// position/line bookkeeping.
package csslex

// Buffer is the preprocessed input shared read-only by every Tokenizer.
// It is logically immutable once constructed; NewBuffer is the only
// place bytes are copied out of caller-owned memory.
type Buffer struct {
	text string
}

// NewBuffer preprocesses text per the CSS Syntax Module input-preprocessing
// rules and wraps the result for shared, read-only use by tokenizers.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: Preprocess(text)}
}

// Text returns the preprocessed text. Callers must not mutate the
// returned string's backing bytes (Go strings are already immutable, so
// this is naturally upheld).
func (b *Buffer) Text() string { return b.text }

// Len returns the byte length of the preprocessed text.
func (b *Buffer) Len() int { return len(b.text) }

// Preprocess normalizes line endings and NUL bytes per
// https://drafts.csswg.org/css-syntax/#input-preprocessing. Order matters:
// CRLF must collapse before the lone-CR rule runs, or a CRLF pair would
// produce two newlines instead of one.
func Preprocess(text string) string {
	buf := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\r' && i+1 < len(text) && text[i+1] == '\n':
			buf = append(buf, '\n')
			i++
		case c == '\r' || c == '\f':
			buf = append(buf, '\n')
		case c == 0:
			buf = append(buf, "�"...)
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}
