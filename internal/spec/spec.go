// Package spec implements the generic speculation primitives the parallel
// CSS driver is built on. Neither primitive here knows anything about CSS:
// they operate on type parameters supplied by the caller.
package spec

import "golang.org/x/sync/errgroup"

// Spec starts producer asynchronously computing the true value A, computes
// predictor synchronously to get a guess, and runs consumer against the
// guess speculatively while the producer is still running. If the
// producer's real value turns out to equal the guess, the speculative
// result is kept; otherwise consumer is re-run against the real value and
// that result is returned instead.
//
// Cancellation of the speculative consumer is not supported: both paths
// run to completion, so a misprediction pays the full cost of re-running
// consumer. Equality is plain Go `==` over comparable A.
func Spec[A comparable, B any](producer func() A, predictor func() A, consumer func(A) B) B {
	resultCh := make(chan A, 1)
	go func() {
		resultCh <- producer()
	}()

	guess := predictor()
	speculative := consumer(guess)

	real := <-resultCh
	if real == guess {
		return speculative
	}
	return consumer(real)
}

// FoldResult is the per-index outcome SpecFold records: the predicted
// input the first body call ran with, and the value produced by the last
// body call for that index (the repair re-run, if there was one). Both
// share type A, mirroring the reference implementation where a fold's
// per-iteration result feeds the next iteration's prediction (e.g. a byte
// offset in and a byte offset out).
type FoldResult[A any] struct {
	Predicted A
	Result    A
}

// SpecFold runs body(i, predictor(i)) for every i in [0, n) concurrently,
// where body and predictor are obtained fresh per task from the supplied
// factories (so each goroutine can capture its own copy of any shared
// resource, e.g. a read-only buffer handle). After every task completes, it
// sequentially validates the chain: for i in [1, n), if results[i-1].Result
// != results[i].Predicted, the prediction at i was wrong and body(i,
// results[i-1].Result) is re-run to replace results[i].Result. The returned
// repaired bitmap records which indices needed this re-run; results[i].Predicted
// always stays the original speculative guess passed to the first body call,
// never the repaired value, so callers can still tell what was guessed.
//
// Validation is a single forward pass with no further fixed-point loop
// (see SPEC_FULL.md's Open Question decision). Because index i is checked
// against results[i-1].Result after any repair already applied to i-1,
// a repair at i is itself validated when i+1 is checked, so cascading
// mispredictions are all corrected within that one pass.
//
// Contract: if predictions form a valid chain (each p_i equals the true
// final value at i-1), the result is identical to what a sequential
// left-to-right fold would have produced.
func SpecFold[A comparable](n int, bodyFactory func() func(i int, predicted A) A, predictorFactory func() func(i int) A) (results []FoldResult[A], repaired []bool, err error) {
	results = make([]FoldResult[A], n)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() (err error) {
			defer recoverAsError(&err)
			predictor := predictorFactory()
			body := bodyFactory()
			p := predictor(i)
			r := body(i, p)
			results[i] = FoldResult[A]{Predicted: p, Result: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	repaired = make([]bool, n)
	for i := 1; i < n; i++ {
		if results[i-1].Result != results[i].Predicted {
			repaired[i] = true
			body := bodyFactory()
			results[i].Result = body(i, results[i-1].Result)
		}
	}

	return results, repaired, nil
}
