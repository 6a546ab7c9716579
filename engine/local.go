package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/searcher/agent"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    *game.Board
	Agents   [2]AgentAdapter
	Starting game.Player
	MaxTurns int
	out      *termenv.Output
}

type Option func(e *LocalEngine)

// WithRender draws the board to w after every move.
func WithRender(w io.Writer) Option {
	return func(e *LocalEngine) {
		e.out = termenv.NewOutput(w)
	}
}

// WithStartingPlayer lets Player2 open the game.
func WithStartingPlayer(p game.Player) Option {
	return func(e *LocalEngine) {
		e.Starting = p
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.MaxTurns = turns
		}
	}
}

// NewLocalEngine pits agent1 (Player1) against agent2 (Player2) on board.
func NewLocalEngine(agent1, agent2 agent.Agent, board *game.Board, options ...Option) *LocalEngine {
	if agent1 == nil || agent2 == nil {
		panic("need two agents")
	}
	e := &LocalEngine{
		State:    board,
		Agents:   [2]AgentAdapter{{InternalAgent: agent1}, {InternalAgent: agent2}},
		Starting: game.Player1,
		MaxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Starting),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.Starting)
	e.render()

	player := e.Starting
	turnCount := 1
	for !e.State.IsTerminal() && turnCount <= e.MaxTurns && ctx.Err() == nil {
		action, searchMetric := e.Agents[player].FindMove(ctx, e.State, player)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       int(player),
			Action:       action.String(),
			SearchMetric: searchMetric,
		})

		next, err := e.State.Apply(action, player)
		if err != nil {
			// The adapter only hands out legal actions
			panic(fmt.Sprintf("engine: %v", err))
		}
		e.State = next.(*game.Board)
		log.Debug().Int("turn", turnCount).Stringer("player", player).Str("action", action.String()).Msg("played")
		e.render()

		player = player.Opponent()
		turnCount++
	}

	winner := ""
	if p, ok := e.State.Winner(); ok {
		winner = p.String()
		log.Info().Msgf("game ended with winner %s after %d turns", winner, turnCount-1)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", turnCount-1)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

func (e *LocalEngine) render() {
	if e.out == nil {
		return
	}
	fmt.Fprintln(e.out, e.State.Render(e.out))
}

// AgentAdapter guards the game loop against agents that fail or answer with
// an illegal action.
type AgentAdapter struct {
	InternalAgent agent.Agent
}

func (aa *AgentAdapter) FindMove(ctx context.Context, board *game.Board, player game.Player) (game.Action, metrics.SearchMetric) {
	candidate, searchMetric, err := aa.InternalAgent.FindMove(ctx, board, player)
	if err == nil {
		if _, err = board.Apply(candidate, player); err == nil {
			return candidate, searchMetric
		}
	}

	fallbackActions := board.LegalActions(player)
	if len(fallbackActions) == 0 {
		panic("no legal actions at all")
	}
	log.Warn().Err(err).Stringer("player", player).Msgf("agent failed, forcing %v", fallbackActions[0])
	return fallbackActions[0], searchMetric
}
