package bench

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phroun/fibbench/fib"
)

func TestRunResultAndElapsed(t *testing.T) {
	result, elapsed := Run(20)
	require.Equal(t, 6765, result)
	require.GreaterOrEqual(t, elapsed, int64(0))
}

func TestRunMatchesFib(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 15} {
		result, _ := Run(n)
		require.Equal(t, fib.Fib(n), result, "n=%d", n)
	}
}
