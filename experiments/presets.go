package experiments

import (
	"quoridor/experiments/metrics"
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Goroutines: 2, Duration: TimeBudget},
	{ID: 3, Goroutines: 4, Duration: TimeBudget},
	{ID: 4, Goroutines: 8, Duration: TimeBudget},
}

// Presets are the built-in experiments, selectable by name from the CLI.
var Presets = map[string]func() Experiment{
	"parallelization_to_throughput": ParallelizationToThroughput,
	"parallelization_to_strength":   ParallelizationToStrength,
	"cutoff":                        Cutoff,
	"wall_probability":              WallProbability,
}

// ParallelizationToThroughput pairs every config with itself for the same
// playing strength and similar game length.
func ParallelizationToThroughput() Experiment {
	matchUps := [][2]int{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, [2]int{config.ID, config.ID})
	}
	return Experiment{Name: "parallelization_to_throughput", Agents: parallelConfigs, MatchUps: matchUps}
}

// ParallelizationToStrength pairs every config against the sequential baseline.
func ParallelizationToStrength() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Duration: TimeBudget}
	matchUps := [][2]int{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, [2]int{baseline.ID, config.ID})
	}
	return Experiment{Name: "parallelization_to_strength", Agents: append([]metrics.AgentConfig{baseline}, parallelConfigs...), MatchUps: matchUps}
}

// Cutoff pairs full playouts against rollouts capped at various depths.
func Cutoff() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Duration: TimeBudget, Cutoff: 1000} // Effectively full playouts
	configs := []metrics.AgentConfig{
		baseline,
		{ID: 1, Duration: TimeBudget, Cutoff: 10},
		{ID: 2, Duration: TimeBudget, Cutoff: 25},
		{ID: 3, Duration: TimeBudget, Cutoff: 50},
		{ID: 4, Duration: TimeBudget, Cutoff: 100},
	}
	matchUps := [][2]int{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]int{baseline.ID, config.ID})
	}
	return Experiment{Name: "cutoff", Agents: configs, MatchUps: matchUps}
}

// WallProbability pairs the default rollout policy against more and less
// aggressive wall placement.
func WallProbability() Experiment {
	baseline := metrics.AgentConfig{ID: 0, Duration: TimeBudget}
	configs := []metrics.AgentConfig{
		baseline,
		{ID: 1, Duration: TimeBudget, WallProbability: 0.25},
		{ID: 2, Duration: TimeBudget, WallProbability: 0.5},
		{ID: 3, Duration: TimeBudget, WallProbability: 1},
	}
	matchUps := [][2]int{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]int{baseline.ID, config.ID})
	}
	return Experiment{Name: "wall_probability", Agents: configs, MatchUps: matchUps}
}
