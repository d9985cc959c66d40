package partition

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/speculss/internal/csslex"
)

// TestSpecTokenizeUnderHighConcurrency drives SpecTokenize from many
// goroutines at once over a shared input, modeled on wazero's
// runAdhocTestUnderHighConcurrency (tests/engine/concurrency_test.go): the
// same kind of stress test, applied here to the speculative driver instead
// of a wasm engine.
func TestSpecTokenizeUnderHighConcurrency(t *testing.T) {
	const css = ".foo > .bar[data-x~=\"y\"] { color: red; margin: -1.5em 2% }"
	wantNodes := csslex.All(css)

	const goroutines = 200
	var wg sync.WaitGroup
	wg.Add(goroutines)
	errs := make([]error, goroutines)
	for g := 0; g < goroutines; g++ {
		g := g
		go func() {
			defer wg.Done()
			n := g%4 + 1
			_, nodes, err := SpecTokenize(css, n)
			if err != nil {
				errs[g] = err
				return
			}
			if len(nodes) != len(wantNodes) {
				errs[g] = fmt.Errorf("n=%d: want %d tokens, got %d", n, len(wantNodes), len(nodes))
				return
			}
			for i := range nodes {
				if nodes[i].Token.Kind != wantNodes[i].Token.Kind {
					errs[g] = fmt.Errorf("n=%d: token %d kind mismatch: want %v got %v", n, i, wantNodes[i].Token.Kind, nodes[i].Token.Kind)
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}
