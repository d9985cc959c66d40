package csslex

import "github.com/alecthomas/repr"

// Dump renders a Node as a multi-line Go-like struct literal, useful for
// eyeballing golden-test mismatches. The benchmark CLI's --dump flag does
// not use it; that flag prints tojson.Pretty output.
func Dump(n Node) string {
	return repr.String(n, repr.Indent("  "))
}
