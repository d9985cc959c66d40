// Package tojson implements the deterministic token-to-JSON encoding used
// only for golden-test comparison (spec.md §4.F); it is never on the
// tokenization hot path.
package tojson

import (
	"encoding/json"
	"math"

	"github.com/tetratelabs/speculss/internal/csslex"
)

// Token encodes a single Token as the JSON shape the oracle compares
// against: most kinds are a [kind, ...payload] list, simple punctuators and
// Delim collapse to a bare JSON string.
func Token(tok csslex.Token) any {
	switch tok.Kind {
	case csslex.Ident:
		return []any{"ident", tok.Name}
	case csslex.Function:
		return []any{"function", tok.Name}
	case csslex.AtKeyword:
		return []any{"at-keyword", tok.Name}
	case csslex.Hash:
		return []any{"hash", tok.Name, "unrestricted"}
	case csslex.IDHash:
		return []any{"hash", tok.Name, "id"}
	case csslex.String:
		return []any{"string", tok.Name}
	case csslex.BadString:
		return []any{"error", "bad-string"}
	case csslex.URL:
		return []any{"url", tok.Name}
	case csslex.BadURL:
		return []any{"error", "bad-url"}
	case csslex.Delim:
		return string(tok.Rune)
	case csslex.Number:
		return append([]any{"number"}, numeric(tok.Numeric)...)
	case csslex.Percentage:
		return append([]any{"percentage"}, numeric(tok.Numeric)...)
	case csslex.Dimension:
		return append(append([]any{"dimension"}, numeric(tok.Numeric)...), tok.Name)
	case csslex.UnicodeRange:
		return []any{"unicode-range", tok.RangeStart, tok.RangeEnd}
	case csslex.IncludeMatch:
		return "~="
	case csslex.DashMatch:
		return "|="
	case csslex.PrefixMatch:
		return "^="
	case csslex.SuffixMatch:
		return "$="
	case csslex.SubstringMatch:
		return "*="
	case csslex.Column:
		return "||"
	case csslex.WhiteSpace:
		return " "
	case csslex.CDO:
		return "<!--"
	case csslex.CDC:
		return "-->"
	case csslex.Colon:
		return ":"
	case csslex.Semicolon:
		return ";"
	case csslex.Comma:
		return ","
	case csslex.LeftBracket:
		return "["
	case csslex.RightBracket:
		return "]"
	case csslex.LeftParen:
		return "("
	case csslex.RightParen:
		return ")"
	case csslex.LeftCurlyBracket:
		return "{"
	case csslex.RightCurlyBracket:
		return "}"
	default:
		return nil
	}
}

func numeric(v csslex.NumericValue) []any {
	kind := "number"
	if v.HasIntValue {
		kind = "integer"
	}
	return []any{v.Representation, v.Value, kind}
}

// Location encodes a SourceLocation as [line, column].
func Location(loc csslex.SourceLocation) any {
	return []any{loc.Line, loc.Column}
}

// List encodes every token in nodes, in order, ignoring locations — this is
// what the golden oracle in spec.md §6 compares against a ["ident", ...]
// style expected list.
func List(nodes []csslex.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = Token(n.Token)
	}
	return out
}

// Compact renders nodes as compact JSON.
func Compact(nodes []csslex.Node) ([]byte, error) {
	return json.Marshal(List(nodes))
}

// Pretty renders nodes as indented JSON, matching the original
// implementation's pretty-printed debug dump.
func Pretty(nodes []csslex.Node) ([]byte, error) {
	return json.MarshalIndent(List(nodes), "", "  ")
}

// AlmostEqual compares two decoded JSON values for equality, treating
// float64 numbers (as encoding/json decodes them into interface{} values;
// json.Number is not handled) with a tolerance of 1e-6 — the numeric
// tolerance spec.md §4.F requires for golden comparisons — and comparing
// everything else structurally.
func AlmostEqual(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && math.Abs(av-bv) < 1e-6
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !AlmostEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return false
	}
}
