package speculss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuntime_Tokenize(t *testing.T) {
	r := NewRuntime()
	nodes := r.Tokenize("cls1 : cls2 {prop: val;}")
	require.NotEmpty(t, nodes)
	require.Equal(t, "cls1", nodes[0].Token.Name)
}

func TestRuntime_SpecTokenizeMatchesTokenize(t *testing.T) {
	const css = ".foo > .bar[data-x~=\"y\"] { color: red; margin: -1.5em 2% }"

	for _, partitions := range []int{1, 2, 3, 4, 8} {
		r := NewRuntimeWithConfig(NewConfig().WithPartitions(partitions))

		want := r.Tokenize(css)
		stats, got, err := r.SpecTokenize(css)
		require.NoError(t, err)
		require.Len(t, got, len(want), "partitions=%d", partitions)
		for i := range want {
			require.Equal(t, want[i].Token.Kind, got[i].Token.Kind, "partitions=%d token=%d", partitions, i)
		}
		require.Len(t, stats.Mispredictions, partitions)
	}
}

func TestRuntime_SpecTokenizeZeroPartitionsFallsBackToOne(t *testing.T) {
	r := NewRuntimeWithConfig(NewConfig().WithPartitions(0))
	stats, got, err := r.SpecTokenize("a b c")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.Len(t, stats.Mispredictions, 1)
}
