package metrics

import "time"

// AgentConfig describes one contestant of an experiment. Zero values fall
// back to the search defaults.
type AgentConfig struct {
	ID              int           `yaml:"id"`
	Agent           string        `yaml:"agent"` // "evaluation" (default) or "training"
	Goroutines      int           `yaml:"goroutines"`
	Duration        time.Duration `yaml:"duration"`
	Episodes        int           `yaml:"episodes"`
	Cutoff          int           `yaml:"cutoff"`
	Exploration     float64       `yaml:"exploration"`
	WallProbability float64       `yaml:"wall_probability"`
	WallMargin      int           `yaml:"wall_margin"`
	Evaluation      string        `yaml:"evaluation"` // "path" (default) or "score"
	Temperature     float64       `yaml:"temperature"`
	Seed            uint64        `yaml:"seed"`
}
