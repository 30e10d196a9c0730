package searcher

import (
	"math"
	"othello/game"
	"sync"
)

// decision is a node of the MCTS tree. Its statistics are kept from the point
// of view of player, the one whose move led to it, so a parent simply picks
// the child with the highest UCT value.
type decision struct {
	sync.Mutex
	parent   *decision
	player   game.Player
	moves    []game.Square
	children []*decision // children[i] follows moves[i]
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, player game.Player, state game.Position) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:   parent,
		player:   player,
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// selectOrExpand descends one level. It expands the next unexplored move if
// there is one (added is true), otherwise it selects the child with the best
// UCT value. Both apply a virtual loss to the child. A terminal node returns
// itself.
func (d *decision) selectOrExpand(state game.Position) (child *decision, childState game.Position, added bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.children) < len(d.moves) { // Expandable node
		move := d.moves[len(d.children)]
		childState = state.Play(move)
		child = newDecision(d, state.Player(), childState)
		child.applyLoss()
		d.children = append(d.children, child)
		return child, childState, true
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.moves[ith]), false
}

func (d *decision) pickChild() int {
	// Every child carries at least one visit, real or virtual
	total := 0.0
	for _, child := range d.children {
		total += child.visitCount()
	}
	policy := newUCT(CSquared, total)

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) score(policy uct) float64 {
	d.Lock()
	defer d.Unlock()

	return policy.value(d.rewards, d.visits)
}

func (d *decision) visitCount() float64 {
	d.Lock()
	defer d.Unlock()

	return d.visits
}

// backup replaces the virtual loss with the playout result and returns the parent.
func (d *decision) backup(winner game.Player) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.rewards -= Loss
		d.visits--
	}
	d.rewards += reward(d.player, winner)
	d.visits++

	return d.parent
}

// bestMove returns the most visited move, the first one on ties.
func (d *decision) bestMove() game.Square {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 {
		return game.NoMove
	}
	bestIndex := 0
	maxVisits := -1.0
	for i, child := range d.children {
		if v := child.visitCount(); v > maxVisits {
			maxVisits = v
			bestIndex = i
		}
	}
	return d.moves[bestIndex]
}
