// meta/meta.go
package meta

import (
	"math"
	"time"
)

// GOROUTINES defines the number of root-parallel search workers.
const GOROUTINES = 1

// EPISODES defines the default number of MCTS iterations per move.
const EPISODES = 400

// DURATION defines the default wall-clock budget per move.
const DURATION = 2 * time.Second

// WITH_CUTOFF defines the maximum number of plies played out per rollout.
const WITH_CUTOFF = 100

// EXPLORATION is the UCB exploration constant C.
const EXPLORATION = math.Sqrt2

// WALL_PROBABILITY is the chance a rollout places a wall when already ahead.
const WALL_PROBABILITY = 0.75

// WALL_MARGIN is how many steps behind the opponent a player may be and
// still consider walls during expansion.
const WALL_MARGIN = 0

// MAX_TURNS caps the length of a local game.
const MAX_TURNS = 300
