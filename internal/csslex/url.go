package csslex

import "strings"

// consumeURL consumes the body of a url(...) token, assuming the initial
// "url(" has already been consumed. Mirrors
// https://drafts.csswg.org/css-syntax/#consume-a-url-token0.
func (t *Tokenizer) consumeURL() Token {
	for !t.eof() {
		b, _ := t.currentByte()
		switch b {
		case '\t', ' ':
			t.Position++
		case '\n':
			t.Position++
			t.newLine()
		case '"':
			return t.consumeQuotedURL(false)
		case '\'':
			return t.consumeQuotedURL(true)
		case ')':
			t.Position++
			return Token{Kind: URL, Name: ""}
		default:
			return t.consumeUnquotedURL()
		}
	}
	return Token{Kind: URL, Name: ""}
}

func (t *Tokenizer) consumeQuotedURL(singleQuote bool) Token {
	value, ok := t.consumeQuotedString(singleQuote)
	if !ok {
		return t.consumeBadURL()
	}
	return t.consumeURLEnd(value)
}

func (t *Tokenizer) consumeUnquotedURL() Token {
	var sb strings.Builder
	for !t.eof() {
		c := t.consumeRune()
		switch {
		case c == ' ' || c == '\t':
			return t.consumeURLEnd(sb.String())
		case c == '\n':
			t.newLine()
			return t.consumeURLEnd(sb.String())
		case c == ')':
			return Token{Kind: URL, Name: sb.String()}
		case isNonPrintable(c) || c == '"' || c == '\'' || c == '(':
			return t.consumeBadURL()
		case c == '\\':
			if !t.eof() {
				if b, _ := t.currentByte(); b == '\n' {
					return t.consumeBadURL()
				}
			}
			sb.WriteRune(t.consumeEscape())
		default:
			sb.WriteRune(c)
		}
	}
	return Token{Kind: URL, Name: sb.String()}
}

func (t *Tokenizer) consumeURLEnd(value string) Token {
	for !t.eof() {
		c := t.consumeRune()
		switch c {
		case ' ', '\t':
		case '\n':
			t.newLine()
		case ')':
			return Token{Kind: URL, Name: value}
		default:
			return t.consumeBadURL()
		}
	}
	return Token{Kind: URL, Name: value}
}

func (t *Tokenizer) consumeBadURL() Token {
	for !t.eof() {
		c := t.consumeRune()
		switch c {
		case ')':
			return Token{Kind: BadURL}
		case '\\':
			if !t.eof() {
				t.Position++ // skip an escaped ')' or '\'
			}
		case '\n':
			t.newLine()
		}
	}
	return Token{Kind: BadURL}
}

func isNonPrintable(c rune) bool {
	return (c >= 0x00 && c <= 0x08) || c == 0x0B || (c >= 0x0E && c <= 0x1F) || c == 0x7F
}
