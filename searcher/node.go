package searcher

import "quoridor/game"

// node is a position reached from the root. The parent pointer is a plain
// back-reference; children are owned by their parent and never removed.
type node struct {
	parent   *node
	action   game.Action // zero at the root
	player   game.Player // to move in state
	state    game.State
	depth    int
	children []*node
	rewards  float64
	visits   int
}

func newRoot(state game.State, player game.Player) *node {
	return &node{state: state, player: player}
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node) addChild(action game.Action, state game.State) *node {
	child := &node{
		parent: n,
		action: action,
		player: n.player.Opponent(),
		state:  state,
		depth:  n.depth + 1,
	}
	n.children = append(n.children, child)
	return child
}

// average is the mean reward, 0 for an unvisited node.
func (n *node) average() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// update records one rollout and returns the parent for the next step of
// backpropagation.
func (n *node) update(reward float64) *node {
	n.rewards += reward
	n.visits++
	return n.parent
}

func (n *node) policy() Policy {
	policy := make(Policy, len(n.children))
	for i, child := range n.children {
		policy[i] = Edge{
			Action:  child.action,
			Visits:  child.visits,
			Rewards: child.rewards,
		}
	}
	return policy
}
