package csslex

import "strings"

// isIdentStart reports whether the code point at the current position
// begins an ident-sequence: a letter, '_', non-ASCII, a valid escape, or a
// '-' followed by one of those. Mirrors
// https://drafts.csswg.org/css-syntax/#would-start-an-identifier.
func (t *Tokenizer) isIdentStart() bool {
	if t.eof() {
		return false
	}
	b, _ := t.currentByte()
	switch {
	case isAsciiAlpha(rune(b)) || b == '_':
		return true
	case b == '-':
		if !t.hasMore(1) {
			return false
		}
		b1, _ := t.byteAt(1)
		switch {
		case isAsciiAlpha(rune(b1)) || b1 == '_':
			return true
		case b1 == '\\':
			return !strings.HasPrefix(t.text[t.Position+1:], "\\\n")
		default:
			return b1 > 0x7F
		}
	case b == '\\':
		return !t.startsWith("\\\n")
	default:
		return b > 0x7F
	}
}

// consumeIdentLike consumes a name and, if immediately followed by '(',
// produces Function (or enters URL mode for the case-insensitive name
// "url"); otherwise produces Ident.
func (t *Tokenizer) consumeIdentLike() Token {
	value := t.consumeName()
	if !t.eof() {
		if b, _ := t.currentByte(); b == '(' {
			t.Position++
			if strings.EqualFold(value, "url") {
				return t.consumeURL()
			}
			return Token{Kind: Function, Name: value}
		}
	}
	return Token{Kind: Ident, Name: value}
}

// consumeName consumes a name per
// https://drafts.csswg.org/css-syntax/#consume-a-name.
func (t *Tokenizer) consumeName() string {
	var sb strings.Builder
	for !t.eof() {
		b, _ := t.currentByte()
		switch {
		case isNameByte(b):
			t.Position++
			sb.WriteByte(b)
		case b == '\\':
			if t.startsWith("\\\n") {
				return sb.String()
			}
			t.Position++
			sb.WriteRune(t.consumeEscape())
		case b > 0x7F:
			sb.WriteRune(t.consumeRune())
		default:
			return sb.String()
		}
	}
	return sb.String()
}
