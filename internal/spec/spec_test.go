package spec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecReturnsConsumerOfProducerWhenPredictionMatches(t *testing.T) {
	producer := func() int { return 42 }
	predictor := func() int { return 42 }

	got := Spec(producer, predictor, func(a int) int { return a * 2 })
	require.Equal(t, 84, got)
}

func TestSpecRecoversFromWrongPrediction(t *testing.T) {
	calls := 0
	producer := func() int { return 7 }
	predictor := func() int { return 0 } // deliberately wrong
	consumer := func(a int) int {
		calls++
		return a * 10
	}

	got := Spec(producer, predictor, consumer)
	require.Equal(t, 70, got)
	require.Equal(t, 2, calls) // speculative + real re-run
}

func TestSpecObservationalEquivalence(t *testing.T) {
	// Spec(p, q, c) must equal c(p()) for arbitrary p, q, c.
	for _, predicted := range []int{1, 2, 3, 100} {
		producer := func() int { return 5 }
		predictor := func() int { return predicted }
		consumer := func(a int) int { return a + 1 }

		require.Equal(t, consumer(producer()), Spec(producer, predictor, consumer))
	}
}

func TestSpecFoldValidChainMatchesSequential(t *testing.T) {
	const n = 6
	bodyFactory := func() func(int, int) int {
		return func(i, predicted int) int { return predicted + i }
	}
	// Compute the true sequential chain first so the predictor always guesses right.
	sequential := make([]int, n)
	acc := 0
	for i := 0; i < n; i++ {
		acc = acc + i
		sequential[i] = acc
	}
	predictorFactory := func() func(int) int {
		return func(i int) int {
			if i == 0 {
				return 0
			}
			return sequential[i-1]
		}
	}

	results, repaired, err := SpecFold(n, bodyFactory, predictorFactory)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.Equal(t, sequential[i], results[i].Result)
	}
	for i := 0; i < n; i++ {
		require.False(t, repaired[i], "i=%d", i)
	}
}

func TestSpecFoldRepairsMispredictedIndex(t *testing.T) {
	const n = 4
	bodyFactory := func() func(int, int) int {
		return func(i, predicted int) int { return predicted + 1 }
	}
	predictorFactory := func() func(int) int {
		return func(i int) int { return 0 } // every guess is "0", always wrong after i=0
	}

	results, repaired, err := SpecFold(n, bodyFactory, predictorFactory)
	require.NoError(t, err)
	// Every guess after index 0 is wrong; a single forward validation pass
	// still reconstructs the full sequential chain 1, 2, 3, 4 because each
	// repair is visible to the next index's check.
	require.Equal(t, []int{1, 2, 3, 4}, []int{
		results[0].Result, results[1].Result, results[2].Result, results[3].Result,
	})
	require.Equal(t, []bool{false, true, true, true}, repaired)
	// Predicted must retain the original wrong guess (0), not the repaired input it was re-run with.
	require.Equal(t, []int{0, 0, 0, 0}, []int{
		results[0].Predicted, results[1].Predicted, results[2].Predicted, results[3].Predicted,
	})
}

func TestSpecFoldSurfacesWorkerPanicAsError(t *testing.T) {
	bodyFactory := func() func(int, int) int {
		return func(i, predicted int) int {
			if i == 2 {
				panic("boom")
			}
			return predicted
		}
	}
	predictorFactory := func() func(int) int {
		return func(i int) int { return 0 }
	}

	_, _, err := SpecFold(5, bodyFactory, predictorFactory)
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}
