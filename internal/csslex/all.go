package csslex

// All preprocesses text and lexes it to completion, returning every Node in
// order. It is the sequential baseline both the parallel driver and the
// test oracle are checked against.
func All(text string) []Node {
	buf := NewBuffer(text)
	tok := NewTokenizer(buf)
	var nodes []Node
	for {
		n, ok := tok.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, n)
	}
}
