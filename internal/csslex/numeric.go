package csslex

import (
	"math"
	"strconv"
	"strings"
)

// consumeNumeric consumes [+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)? — the
// caller only enters this when at least one digit is known to be present —
// and dispatches to Percentage, Dimension, or Number depending on what
// follows. Mirrors
// https://drafts.csswg.org/css-syntax/#consume-a-number and
// https://drafts.csswg.org/css-syntax/#consume-a-numeric-token.
func (t *Tokenizer) consumeNumeric() Token {
	var repr strings.Builder
	isInteger := true

	if b, _ := t.currentByte(); b == '-' || b == '+' {
		repr.WriteByte(b)
		t.Position++
	}
	for !t.eof() {
		b, _ := t.currentByte()
		if !isDigit(b) {
			break
		}
		repr.WriteByte(b)
		t.Position++
	}
	if t.hasMore(1) {
		if b0, _ := t.currentByte(); b0 == '.' {
			if b1, _ := t.byteAt(1); isDigit(b1) {
				isInteger = false
				repr.WriteByte('.')
				t.Position++
				for !t.eof() {
					b, _ := t.currentByte()
					if !isDigit(b) {
						break
					}
					repr.WriteByte(b)
					t.Position++
				}
			}
		}
	}

	if t.exponentFollows() {
		isInteger = false
		b, _ := t.currentByte()
		repr.WriteByte(b) // 'e' or 'E'
		t.Position++
		if b2, _ := t.currentByte(); b2 == '+' || b2 == '-' {
			repr.WriteByte(b2)
			t.Position++
		}
		for !t.eof() {
			b, _ := t.currentByte()
			if !isDigit(b) {
				break
			}
			repr.WriteByte(b)
			t.Position++
		}
	}

	value := newNumericValue(repr.String(), isInteger)

	if b, ok := t.currentByte(); ok && b == '%' {
		t.Position++
		return Token{Kind: Percentage, Numeric: value}
	}
	if t.isIdentStart() {
		return Token{Kind: Dimension, Numeric: value, Name: t.consumeName()}
	}
	return Token{Kind: Number, Numeric: value}
}

// exponentFollows reports whether the current position begins an exponent
// suffix: e|E followed by a digit, or e|E followed by a sign and a digit.
func (t *Tokenizer) exponentFollows() bool {
	b0, ok := t.currentByte()
	if !ok || (b0 != 'e' && b0 != 'E') {
		return false
	}
	b1, ok1 := t.byteAt(1)
	if ok1 && isDigit(b1) {
		return true
	}
	if ok1 && (b1 == '+' || b1 == '-') {
		b2, ok2 := t.byteAt(2)
		return ok2 && isDigit(b2)
	}
	return false
}

// newNumericValue parses representation into a NumericValue. IntValue
// saturates to math.MaxInt64/math.MinInt64 on overflow (spec.md's
// documented Open Question decision); Value is always finite since CSS
// numeric representations never exceed float64's representable range in
// practice.
func newNumericValue(representation string, isInteger bool) NumericValue {
	v, _ := strconv.ParseFloat(representation, 64)
	if math.IsInf(v, 0) {
		if v > 0 {
			v = math.MaxFloat64
		} else {
			v = -math.MaxFloat64
		}
	}
	nv := NumericValue{Representation: representation, Value: v}
	if isInteger {
		digits := representation
		if strings.HasPrefix(digits, "+") {
			digits = digits[1:]
		}
		iv, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			if strings.HasPrefix(digits, "-") {
				iv = math.MinInt64
			} else {
				iv = math.MaxInt64
			}
		}
		nv.IntValue = iv
		nv.HasIntValue = true
	}
	return nv
}
