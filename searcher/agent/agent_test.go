package agent

import (
	"context"
	"testing"

	"quoridor/game"
	"quoridor/searcher"

	"github.com/stretchr/testify/require"
)

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays the most visited move", func(t *testing.T) {
		policy := searcher.Policy{
			{Action: game.Move(1, 4), Visits: 3},
			{Action: game.Move(0, 3), Visits: 7},
			{Action: game.Move(0, 5), Visits: 7},
		}

		require.Equal(t, game.Move(0, 3), findMax(policy))
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		a := NewEvaluationAgent(searcher.NewMCTS(searcher.WithEpisodes(5), searcher.WithSeed(1)))
		b := game.BoardFromPawns(9, 10, game.Cell{Row: 7, Col: 4}, game.Cell{Row: 3, Col: 0})

		action, _, err := a.FindMove(context.Background(), b, game.Player1)

		require.NoError(t, err)
		require.Equal(t, game.Move(8, 4), action)
	})

	t.Run("reports search errors", func(t *testing.T) {
		a := NewEvaluationAgent(searcher.NewMCTS(searcher.WithEpisodes(5)))
		b := game.BoardFromPawns(9, 10, game.Cell{Row: 8, Col: 4}, game.Cell{Row: 3, Col: 0})

		_, _, err := a.FindMove(context.Background(), b, game.Player2)

		require.ErrorIs(t, err, searcher.ErrEmptyFrontier)
	})
}

func TestTrainingAgent(t *testing.T) {
	policy := searcher.Policy{
		{Action: game.Move(1, 4), Visits: 1},
		{Action: game.Move(0, 3), Visits: 3},
	}

	t.Run("temperature one keeps visit proportions", func(t *testing.T) {
		adjusted := adjustTemperature(policy, 1.0)

		require.InDelta(t, 0.25, adjusted[0].prob, 1e-9)
		require.InDelta(t, 0.75, adjusted[1].prob, 1e-9)
	})

	t.Run("low temperature sharpens the distribution", func(t *testing.T) {
		adjusted := adjustTemperature(policy, 0.5)

		require.InDelta(t, 0.1, adjusted[0].prob, 1e-9)
		require.InDelta(t, 0.9, adjusted[1].prob, 1e-9)
	})

	t.Run("unvisited policies are sampled uniformly", func(t *testing.T) {
		adjusted := adjustTemperature(searcher.Policy{{Action: game.Move(1, 4)}, {Action: game.Move(0, 3)}}, 1.0)

		require.InDelta(t, 0.5, adjusted[0].prob, 1e-9)
	})

	t.Run("samples by cumulative probability", func(t *testing.T) {
		adjusted := adjustTemperature(policy, 1.0)

		require.Equal(t, game.Move(1, 4), sample(adjusted, 0.1))
		require.Equal(t, game.Move(0, 3), sample(adjusted, 0.3))
		require.Equal(t, game.Move(0, 3), sample(adjusted, 0.9999999999999999))
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		a := NewTrainingAgent(searcher.NewMCTS(searcher.WithEpisodes(5), searcher.WithSeed(1)), 1.0, 1)
		b := game.BoardFromPawns(9, 10, game.Cell{Row: 4, Col: 4}, game.Cell{Row: 1, Col: 2})

		action, _, err := a.FindMove(context.Background(), b, game.Player2)

		require.NoError(t, err)
		require.Equal(t, game.Move(0, 2), action)
	})

	t.Run("plays a legal move", func(t *testing.T) {
		a := NewTrainingAgent(searcher.NewMCTS(searcher.WithEpisodes(40), searcher.WithSeed(2)), 1.0, 2)
		b := game.NewStandardBoard()

		action, _, err := a.FindMove(context.Background(), b, game.Player1)

		require.NoError(t, err)
		_, err = b.Apply(action, game.Player1)
		require.NoError(t, err)
	})
}
