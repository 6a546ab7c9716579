package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "game", "What to run: game or experiment")
	episodes := flag.Int("episodes", meta.EPISODES, "Number of MCTS iterations per move, 0 for time-bound search")
	duration := flag.Duration("duration", 0, fmt.Sprintf("Time budget per move, e.g. %v", meta.DURATION))
	goroutines := flag.Int("goroutines", meta.GOROUTINES, "Number of root-parallel search workers")
	cutoff := flag.Int("cutoff", meta.WITH_CUTOFF, "Maximum plies per rollout")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a time-based seed")
	size := flag.Int("size", game.StandardSize, "Board size")
	walls := flag.Int("walls", game.StandardWalls, "Walls per player")
	render := flag.Bool("render", true, "Draw the board after every move")
	config := flag.String("config", "", "Experiment YAML file")
	preset := flag.String("preset", "", "Built-in experiment to run when no config is given")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "game":
		if *seed == 0 {
			*seed = uint64(time.Now().UnixNano())
		}
		agentConfig := metrics.AgentConfig{
			Goroutines: *goroutines,
			Episodes:   *episodes,
			Duration:   *duration,
			Cutoff:     *cutoff,
		}
		if agentConfig.Episodes <= 0 && agentConfig.Duration <= 0 {
			agentConfig.Duration = meta.DURATION
		}
		runGame(ctx, agentConfig, *seed, *size, *walls, *render)
	case "experiment":
		runExperiment(ctx, *config, *preset)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// runGame plays one agent against an identically configured copy of itself.
func runGame(ctx context.Context, config metrics.AgentConfig, seed uint64, size, walls int, render bool) {
	options := []engine.Option{}
	if render {
		options = append(options, engine.WithRender(os.Stdout))
	}
	e := engine.NewLocalEngine(
		experiments.CreateAgent(config, seed),
		experiments.CreateAgent(config, seed+1),
		game.NewBoard(size, walls),
		options...,
	)

	winner, gameMetric, _ := e.Run(ctx)
	if winner == "" {
		winner = "nobody"
	}
	log.Info().
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msgf("game over! Winner: %s", winner)
}

func runExperiment(ctx context.Context, config, preset string) {
	var exp experiments.Experiment
	switch {
	case config != "":
		var err error
		exp, err = experiments.LoadExperiment(config)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment")
		}
	case preset != "":
		build, ok := experiments.Presets[preset]
		if !ok {
			log.Fatal().Msgf("unknown preset %q", preset)
		}
		exp = build()
	default:
		log.Fatal().Msg("an experiment needs -config or -preset")
	}

	dir, err := experiments.Run(ctx, exp)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results stored in %s", dir)
}
