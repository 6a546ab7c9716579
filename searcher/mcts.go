package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MCTS searches a fresh tree on every call; nothing is reused between moves.
// An MCTS value is not safe for concurrent searches.
type MCTS struct {
	goroutines      int
	episodes        int
	duration        time.Duration
	cutoff          int
	exploration     float64
	wallProbability float64
	wallMargin      int
	seed            uint64
	rng             *rand.Rand
	evaluate        game.Evaluate
	metrics         metrics.Collector
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:      meta.GOROUTINES,
		cutoff:          meta.WITH_CUTOFF,
		exploration:     meta.EXPLORATION,
		wallProbability: meta.WALL_PROBABILITY,
		wallMargin:      meta.WALL_MARGIN,
		seed:            uint64(time.Now().UnixNano()),
		evaluate:        game.EvaluatePathDifference,
		metrics:         metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	m.rng = rand.New(rand.NewSource(m.seed))
	return m
}

// Search runs a single search for player from state, bounded by an iteration
// count and/or a time budget, and returns the most visited root move.
func Search(state game.State, player game.Player, iterations int, budget time.Duration) (game.Action, error) {
	m := NewMCTS(WithEpisodes(iterations), WithDuration(budget))
	return m.FindNextMove(context.Background(), state, player)
}

// FindNextMove returns the action chosen for player: a move that wins on the
// spot if one exists, otherwise the most visited root child.
func (m *MCTS) FindNextMove(ctx context.Context, state game.State, player game.Player) (game.Action, error) {
	policy, _, err := m.Simulate(ctx, state, player)
	if err != nil {
		return game.Action{}, err
	}
	action, _ := policy.Best()
	return action, nil
}

// Simulate grows the search tree until the budget runs out and returns the
// root statistics along with the search metrics.
func (m *MCTS) Simulate(ctx context.Context, state game.State, player game.Player) (Policy, metrics.SearchMetric, error) {
	if m.episodes <= 0 && m.duration <= 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: no iteration or time budget", ErrEmptyFrontier)
	}
	if state.IsTerminal() {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w: position is already decided", ErrEmptyFrontier)
	}

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	m.metrics.Start(m.goroutines, m.cutoff)

	// A worker without a share of the episodes would only stop at the deadline
	workers := m.goroutines
	if m.episodes > 0 {
		workers = min(workers, m.episodes)
	}
	trees := make([]*tree, workers)
	for i := range trees {
		trees[i] = m.newTree(state.Clone(), player, m.rng.Uint64())
	}

	if decisive := trees[0].decisive(); decisive != nil {
		log.Debug().Str("action", decisive.action.String()).Msg("winning move found at the root")
		policy := trees[0].root.policy()
		for i := range policy {
			policy[i].Decisive = policy[i].Action == decisive.action
		}
		return policy, m.metrics.Complete(), nil
	}

	if len(trees) == 1 {
		trees[0].grow(ctx, deadline, m.episodes)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i, t := range trees {
			episodes := share(m.episodes, len(trees), i)
			g.Go(func() error {
				t.grow(gctx, deadline, episodes)
				return nil
			})
		}
		// Workers never fail: the group only hands them a cancellable context
		_ = g.Wait()
	}

	policies := make([]Policy, len(trees))
	for i, t := range trees {
		policies[i] = t.root.policy()
	}
	policy := merge(policies...)
	metric := m.metrics.Complete()

	if len(policy) == 0 {
		return nil, metric, fmt.Errorf("%w: no legal action for %v", ErrEmptyFrontier, player)
	}

	log.Debug().
		Int("episodes", metric.Episodes).
		Int("full_playouts", metric.FullPlayouts).
		Int("cutoffs", metric.Cutoffs).
		Int("tree_size", metric.TreeSize).
		Int("max_depth", metric.MaxDepth).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return policy, metric, nil
}

// share splits episodes between workers, giving the remainder to the first
// ones. Zero stays zero: the deadline alone bounds the search.
func share(episodes, workers, i int) int {
	if episodes <= 0 {
		return 0
	}
	n := episodes / workers
	if i < episodes%workers {
		n++
	}
	return n
}

// tree is the private search state of one worker.
type tree struct {
	*MCTS
	root        *node
	perspective game.Player
	rng         *rand.Rand
}

// newTree creates a root for state and expands it right away, so that even a
// single iteration has a child to credit.
func (m *MCTS) newTree(state game.State, player game.Player, seed uint64) *tree {
	t := &tree{
		MCTS:        m,
		root:        newRoot(state, player),
		perspective: player,
		rng:         rand.New(rand.NewSource(seed)),
	}
	m.metrics.AddNodes(1)
	t.materialize(t.root, GenerateActions(state, player, m.wallMargin))
	return t
}

// decisive returns a root child in which the searching player has already won.
func (t *tree) decisive() *node {
	for _, child := range t.root.children {
		if child.state.IsTerminal() && child.state.Score(t.perspective) > child.state.Score(t.perspective.Opponent()) {
			return child
		}
	}
	return nil
}

// grow runs iterations until the episode count is reached, the deadline
// passes or ctx is cancelled. The root needs a frontier for any of it to
// matter.
func (t *tree) grow(ctx context.Context, deadline time.Time, episodes int) {
	if t.root.isLeaf() {
		return
	}
	for i := 0; episodes <= 0 || i < episodes; i++ {
		if expired(ctx, deadline) {
			return
		}
		t.iterate(ctx, deadline)
		t.metrics.AddEpisode()
	}
}

func (t *tree) iterate(ctx context.Context, deadline time.Time) {
	leaf := t.selects()
	child := t.expands(leaf)
	reward := t.rollout(ctx, deadline, child)
	backup(child, reward)
}

// selects descends from the root along the highest UCT children.
func (t *tree) selects() *node {
	n := t.root
	for !n.isLeaf() {
		n = t.pickChild(n)
	}
	return n
}

func (t *tree) pickChild(n *node) *node {
	policy := newUCT(t.exploration, n.visits)

	best := make([]int, 0, 1)
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := policy.evaluate(child.rewards, child.visits)
		switch {
		case score > maxScore:
			maxScore = score
			best = append(best[:0], i)
		case score == maxScore:
			best = append(best, i)
		}
	}
	if len(best) == 0 {
		panic("node has children but none could be scored")
	}
	return n.children[best[t.rng.Intn(len(best))]]
}

// expands grows a leaf that has been simulated before and returns a random
// new child to simulate from. Unvisited or finished leaves are simulated
// as they are.
func (t *tree) expands(leaf *node) *node {
	if leaf.visits == 0 || leaf.state.IsTerminal() {
		return leaf
	}

	added := t.materialize(leaf, GenerateActions(leaf.state, leaf.player, t.wallMargin))
	if added == 0 {
		return leaf
	}
	return leaf.children[t.rng.Intn(len(leaf.children))]
}

// materialize appends one child per playable action and returns how many
// were added. Actions the state rejects are skipped.
func (t *tree) materialize(n *node, actions []game.Action) int {
	added := 0
	for _, action := range actions {
		state, err := n.state.Apply(action, n.player)
		if err != nil {
			log.Debug().Err(err).Str("action", action.String()).Msg("skipping candidate")
			continue
		}
		n.addChild(action, state)
		added++
	}
	if added > 0 {
		t.metrics.AddNodes(added)
		t.metrics.ObserveDepth(n.depth + 1)
	}
	return added
}

// rollout plays from n until the game ends, the ply cap is hit or time runs
// out, and evaluates the final state for the searching player.
func (t *tree) rollout(ctx context.Context, deadline time.Time, n *node) float64 {
	state := n.state // states are immutable, Apply hands back successors
	player := n.player

	for depth := 0; !state.IsTerminal(); depth++ {
		if depth >= t.cutoff || expired(ctx, deadline) {
			t.metrics.AddCutoff()
			return t.evaluate(state, t.perspective)
		}

		next, ok := t.play(state, player)
		if !ok {
			t.metrics.AddCutoff()
			return t.evaluate(state, t.perspective)
		}
		state = next
		player = player.Opponent()
	}

	t.metrics.AddFullPlayout()
	return t.evaluate(state, t.perspective)
}

// play applies the rollout policy's choice, falling back to a random pawn
// move when the state rejects it.
func (t *tree) play(state game.State, player game.Player) (game.State, bool) {
	action, ok := chooseRollout(state, player, t.rng, t.wallProbability, t.wallMargin)
	if !ok {
		return nil, false
	}

	next, err := state.Apply(action, player)
	if err == nil {
		return next, true
	}
	if !errors.Is(err, game.ErrIllegalAction) {
		log.Warn().Err(err).Msg("unexpected rollout error")
	}

	action, ok = randomMove(state, player, t.rng)
	if !ok {
		return nil, false
	}
	next, err = state.Apply(action, player)
	return next, err == nil
}

func backup(n *node, reward float64) {
	for n != nil {
		n = n.update(reward)
	}
}

// expired polls ctx and the deadline without blocking.
func expired(ctx context.Context, deadline time.Time) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return !deadline.IsZero() && !time.Now().Before(deadline)
}
