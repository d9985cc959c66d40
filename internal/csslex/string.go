package csslex

import "strings"

// consumeString consumes a quoted string, assuming the current position is
// the opening quote. Mirrors
// https://drafts.csswg.org/css-syntax/#consume-a-string-token0.
func (t *Tokenizer) consumeString(singleQuote bool) Token {
	value, ok := t.consumeQuotedString(singleQuote)
	if !ok {
		return Token{Kind: BadString}
	}
	return Token{Kind: String, Name: value}
}

// consumeQuotedString returns (value, true) on a well-formed string, or
// ("", false) on an unescaped newline — in which case Position is rolled
// back so the newline is not consumed and the next token resumes at it —
// or on reaching EOF before the closing quote.
func (t *Tokenizer) consumeQuotedString(singleQuote bool) (string, bool) {
	t.Position++ // skip the opening quote
	var sb strings.Builder
	for !t.eof() {
		before := t.Position
		c := t.consumeRune()
		switch {
		case c == '"' && !singleQuote:
			return sb.String(), true
		case c == '\'' && singleQuote:
			return sb.String(), true
		case c == '\n':
			t.Position = before
			return "", false
		case c == '\\':
			if !t.eof() {
				if b, _ := t.currentByte(); b == '\n' {
					t.Position++
					t.newLine()
				} else {
					sb.WriteRune(t.consumeEscape())
				}
			}
			// else: escaped EOF, nothing to append.
		default:
			sb.WriteRune(c)
		}
	}
	return "", false
}
