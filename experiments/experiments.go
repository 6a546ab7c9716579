package experiments

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 100 * time.Millisecond
	OutputDir  = "results"
)

// Experiment is a set of agent configs and the pairs of them that play each
// other. MatchUps refer to agents by AgentConfig.ID, first entry plays first
// in even numbered games.
type Experiment struct {
	Name        string                `yaml:"name"`
	Games       int                   `yaml:"games"` // Per match up
	BoardSize   int                   `yaml:"board_size"`
	Walls       int                   `yaml:"walls"`
	MaxTurns    int                   `yaml:"max_turns"`
	Concurrency int                   `yaml:"concurrency"`
	Output      string                `yaml:"output"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][2]int              `yaml:"matchups"`
}

// LoadExperiment reads an experiment from a YAML file and fills in defaults.
func LoadExperiment(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return Experiment{}, fmt.Errorf("failed to parse experiment config %s: %w", path, err)
	}
	if err := exp.validate(); err != nil {
		return Experiment{}, fmt.Errorf("invalid experiment config %s: %w", path, err)
	}
	return exp, nil
}

func (e *Experiment) validate() error {
	if e.Name == "" {
		return fmt.Errorf("missing name")
	}
	if e.Games <= 0 {
		e.Games = NumGames
	}
	if e.BoardSize == 0 {
		e.BoardSize = game.StandardSize
	}
	if e.BoardSize < 3 || e.BoardSize%2 == 0 {
		return fmt.Errorf("board size %d must be odd and at least 3", e.BoardSize)
	}
	if e.Walls == 0 {
		e.Walls = game.StandardWalls
	}
	if e.Concurrency <= 0 {
		e.Concurrency = 1
	}
	if e.Output == "" {
		e.Output = OutputDir
	}
	ids := make(map[int]bool, len(e.Agents))
	for _, config := range e.Agents {
		if ids[config.ID] {
			return fmt.Errorf("duplicate agent id %d", config.ID)
		}
		if config.Episodes <= 0 && config.Duration <= 0 {
			return fmt.Errorf("agent %d has neither episodes nor duration", config.ID)
		}
		if config.Agent != "" && config.Agent != "evaluation" && config.Agent != "training" {
			return fmt.Errorf("agent %d has unknown kind %q", config.ID, config.Agent)
		}
		if config.Evaluation != "" && config.Evaluation != "path" && config.Evaluation != "score" {
			return fmt.Errorf("agent %d has unknown evaluation %q", config.ID, config.Evaluation)
		}
		ids[config.ID] = true
	}
	if len(e.MatchUps) == 0 {
		return fmt.Errorf("no matchups")
	}
	for _, matchUp := range e.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("matchup refers to unknown agent %d", id)
			}
		}
	}
	return nil
}

func (e Experiment) config(id int) metrics.AgentConfig {
	for _, config := range e.Agents {
		if config.ID == id {
			return config
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays every game of the experiment, at most Concurrency at a time, and
// stores configs and records under Output. It returns the directory written to.
func Run(ctx context.Context, exp Experiment) (string, error) {
	if err := exp.validate(); err != nil {
		return "", fmt.Errorf("invalid experiment: %w", err)
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	results := make([]gameResult, len(exp.MatchUps)*exp.Games)
	var mu sync.Mutex
	wins := make(map[int]int, len(exp.Agents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exp.Concurrency)
	for mi, matchUp := range exp.MatchUps {
		config1 := exp.config(matchUp[0])
		config2 := exp.config(matchUp[1])

		log.Info().Msgf("scheduling matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), config1, config2)

		for i := 0; i < exp.Games; i++ {
			id := mi*exp.Games + i + 1
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				// Alternate who opens so neither agent keeps the first move advantage
				starting := game.Player(i % 2)
				seed := uint64(id)
				winner, gameMetric, moveMetrics := runGame(gctx, exp, config1, config2, starting, seed)
				results[id-1] = gameResult{
					record: metrics.GameRecord{
						ID:         id,
						Agent1:     config1.ID,
						Agent2:     config2.ID,
						GameMetric: gameMetric,
					},
					moves: moveMetrics,
				}

				mu.Lock()
				switch winner {
				case game.Player1.String():
					wins[config1.ID]++
				case game.Player2.String():
					wins[config2.ID]++
				}
				mu.Unlock()

				log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %q", mi+1, len(exp.MatchUps), i+1, exp.Games, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("experiment %s interrupted: %w", exp.Name, err)
	}

	log.Info().Interface("wins", wins).Msgf("completed %s experiment", exp.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		for _, mm := range result.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       result.record.ID,
				MoveMetric: mm,
			})
		}
	}
	return store(exp, gameRecords, moveRecords)
}

// store persists experiment metadata and results.
func store(exp Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.Output, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, exp Experiment, config1, config2 metrics.AgentConfig, starting game.Player, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocalEngine(
		CreateAgent(config1, seed),
		CreateAgent(config2, seed+1<<32),
		game.NewBoard(exp.BoardSize, exp.Walls),
		engine.WithStartingPlayer(starting),
		engine.WithMaxTurns(exp.MaxTurns),
	)
	return e.Run(ctx)
}

// CreateAgent builds the agent described by config. A config without a seed
// uses the given one.
func CreateAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Seed != 0 {
		seed = config.Seed
	}
	mcts := createMCTS(config, seed)
	if config.Agent == "training" {
		return agent.NewTrainingAgent(mcts, config.Temperature, seed)
	}
	return agent.NewEvaluationAgent(mcts)
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.WallProbability > 0 {
		options = append(options, searcher.WithWallProbability(config.WallProbability))
	}
	if config.WallMargin != 0 {
		options = append(options, searcher.WithWallMargin(config.WallMargin))
	}
	if config.Evaluation == "score" {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateScore))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
