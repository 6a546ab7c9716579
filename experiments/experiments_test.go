package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quoridor/game"

	"github.com/stretchr/testify/require"
)

const smallExperiment = `
name: smoke
games: 2
board_size: 5
walls: 2
max_turns: 40
concurrency: 2
agents:
  - id: 1
    episodes: 10
  - id: 2
    agent: training
    duration: 5ms
    temperature: 0.5
    evaluation: score
matchups:
  - [1, 2]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExperiment(t *testing.T) {
	t.Run("parses agents and matchups", func(t *testing.T) {
		exp, err := LoadExperiment(writeConfig(t, smallExperiment))

		require.NoError(t, err)
		require.Equal(t, "smoke", exp.Name)
		require.Equal(t, 5, exp.BoardSize)
		require.Len(t, exp.Agents, 2)
		require.Equal(t, 5*time.Millisecond, exp.Agents[1].Duration)
		require.Equal(t, "training", exp.Agents[1].Agent)
		require.Equal(t, [][2]int{{1, 2}}, exp.MatchUps)
		require.Equal(t, OutputDir, exp.Output)
	})

	t.Run("fills in defaults", func(t *testing.T) {
		exp, err := LoadExperiment(writeConfig(t, "name: defaults\nagents: [{id: 1, episodes: 5}]\nmatchups: [[1, 1]]\n"))

		require.NoError(t, err)
		require.Equal(t, NumGames, exp.Games)
		require.Equal(t, game.StandardSize, exp.BoardSize)
		require.Equal(t, game.StandardWalls, exp.Walls)
		require.Equal(t, 1, exp.Concurrency)
	})

	t.Run("rejects invalid experiments", func(t *testing.T) {
		cases := map[string]string{
			"unknown agent":  "name: x\nagents: [{id: 1, episodes: 5}]\nmatchups: [[1, 2]]\n",
			"no budget":      "name: x\nagents: [{id: 1}]\nmatchups: [[1, 1]]\n",
			"duplicate ids":  "name: x\nagents: [{id: 1, episodes: 5}, {id: 1, episodes: 5}]\nmatchups: [[1, 1]]\n",
			"even board":     "name: x\nboard_size: 8\nagents: [{id: 1, episodes: 5}]\nmatchups: [[1, 1]]\n",
			"no name":        "agents: [{id: 1, episodes: 5}]\nmatchups: [[1, 1]]\n",
			"no matchups":    "name: x\nagents: [{id: 1, episodes: 5}]\n",
			"unknown kind":   "name: x\nagents: [{id: 1, episodes: 5, agent: random}]\nmatchups: [[1, 1]]\n",
			"malformed yaml": "name: [x\n",
			"bad evaluation": "name: x\nagents: [{id: 1, episodes: 5, evaluation: material}]\nmatchups: [[1, 1]]\n",
		}
		for name, content := range cases {
			_, err := LoadExperiment(writeConfig(t, content))
			require.Error(t, err, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadExperiment(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPresets(t *testing.T) {
	for name, preset := range Presets {
		exp := preset()
		require.Equal(t, name, exp.Name)
		require.NoError(t, exp.validate(), name)
	}
}

func TestRun(t *testing.T) {
	exp, err := LoadExperiment(writeConfig(t, smallExperiment))
	require.NoError(t, err)
	exp.Output = t.TempDir()

	dir, err := Run(context.Background(), exp)

	require.NoError(t, err)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "game_records.parquet", "move_records.csv", "move_records.parquet"} {
		require.FileExists(t, filepath.Join(dir, file))
	}
	rel, err := filepath.Rel(exp.Output, dir)
	require.NoError(t, err)
	require.Equal(t, "smoke", filepath.Dir(rel))
}

func TestRunCancelled(t *testing.T) {
	exp, err := LoadExperiment(writeConfig(t, smallExperiment))
	require.NoError(t, err)
	exp.Output = t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, exp)

	require.ErrorIs(t, err, context.Canceled)
}
