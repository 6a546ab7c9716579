package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(math.Sqrt2, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt2*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + C*sqrt(ln(N)/n)")
	})

	t.Run("unvisited children score infinity", func(t *testing.T) {
		require.Equal(t, math.Inf(1), newUCT(math.Sqrt2, 100).evaluate(0, 0))
		require.Equal(t, math.Inf(1), newUCT(math.Sqrt2, 0).evaluate(0, 0),
			"Unvisited parents only have unvisited children")
	})

	t.Run("zero exploration is the mean reward", func(t *testing.T) {
		require.Equal(t, 0.5, newUCT(0, 100).evaluate(5, 10))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := newUCT(math.Sqrt2, 100).evaluate(5.0, 10)
		score2 := newUCT(math.Sqrt2, 1000).evaluate(5.0, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(math.Sqrt2, 100)

		require.Greater(t, policy.evaluate(5.0, 10), policy.evaluate(10.0, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(math.Sqrt2, 100)

		require.Greater(t, policy.evaluate(10.0, 10), policy.evaluate(5.0, 10),
			"More rewards should increase exploitation term")
	})
}
