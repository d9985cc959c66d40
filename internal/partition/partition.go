// Package partition implements the parallel tokenizer driver: it splits a
// preprocessed buffer into N contiguous byte ranges, predicts each range's
// true starting token boundary, lexes every range concurrently, then
// validates and repairs any wrong predictions so the stitched-together
// token stream is identical to what the sequential tokenizer would have
// produced (spec.md §4.E).
package partition

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tetratelabs/speculss/internal/csslex"
	"github.com/tetratelabs/speculss/internal/predict"
	"github.com/tetratelabs/speculss/internal/spec"
)

// Stats carries the observable statistics from one SpecTokenize run: a
// per-partition misprediction bitmap and a correlation ID for CLI/CSV
// output (spec.md §4.E "Observable statistics").
type Stats struct {
	RunID          string
	Mispredictions []bool
}

// workerOutput is what each partition's worker produces: the nodes it
// lexed. Its "produced end" position (spec.md §4.E step 3) is reported
// separately, as the return value SpecFold folds over, since that value
// doubles as the next partition's expected start.
type workerOutput struct {
	nodes []csslex.Node
}

// SpecTokenize partitions text into n contiguous byte ranges, lexes them
// concurrently using a predicted start for each, validates and repairs any
// misprediction, and returns the concatenated token stream in partition
// order together with misprediction statistics. For every n >= 1 the
// result is identical, as a sequence of tokens, to csslex.All(text) — only
// SourceLocation for partitions after the first may differ, since workers
// that restart mid-buffer cannot cheaply recover accurate line/column
// (spec.md §9).
func SpecTokenize(text string, n int) (Stats, []csslex.Node, error) {
	if n < 1 {
		n = 1
	}
	buf := csslex.NewBuffer(text)
	length := buf.Len()
	partitionSize := (length + n - 1) / n // round up; last partition may be shorter
	if partitionSize == 0 {
		partitionSize = 1
	}

	// outputs holds each partition's side-channel result (its token vector)
	// keyed by partition index. Every worker, on every run including a
	// repair re-run, overwrites its own slot wholesale — that is exactly
	// the "(i, None) resets vector i; (i, Some(node)) appends" collector
	// protocol from spec.md §4.E/§9, modeled without an explicit channel
	// since Go's shared-memory concurrency makes index-disjoint slice
	// writes from separate goroutines safe without one.
	outputs := make([]workerOutput, n)

	bodyFactory := func() func(i int, tokenStart int) int {
		return func(i int, tokenStart int) int {
			upper := (i + 1) * partitionSize
			if upper > length {
				upper = length
			}
			tok := csslex.NewTokenizer(buf)
			tok.Position = tokenStart
			var nodes []csslex.Node
			for tok.Position < upper {
				node, ok := tok.Next()
				if !ok {
					break
				}
				nodes = append(nodes, node)
			}
			outputs[i] = workerOutput{nodes: nodes}
			return tok.Position
		}
	}

	predictorFactory := func() func(i int) int {
		return func(i int) int {
			if i == 0 {
				return 0
			}
			return predict.NextTokenStart(buf, i*partitionSize)
		}
	}

	_, mispredictions, err := spec.SpecFold(n, bodyFactory, predictorFactory)
	if err != nil {
		return Stats{}, nil, fmt.Errorf("partition: %w", err)
	}

	var all []csslex.Node
	for i := 0; i < n; i++ {
		all = append(all, outputs[i].nodes...)
	}

	return Stats{RunID: uuid.NewString(), Mispredictions: mispredictions}, all, nil
}
