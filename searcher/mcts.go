package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// MCTS is a tree-parallel Monte-Carlo tree search with virtual loss. Every
// search builds a fresh tree.
type MCTS struct {
	settings
	last metrics.SearchMetric
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{settings: newSettings(append([]Option{WithGoroutines(goroutines)}, options...))}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) FindMove(player game.Player, board *game.Board) game.Square {
	state := game.Position{Board: *board, ToMove: player}
	root := newDecision(nil, game.Empty, state)
	if len(root.moves) == 0 {
		return game.NoMove
	}

	m.metrics.Start()
	if m.episodes > 0 {
		m.iterate(root, state)
	} else {
		m.countdown(root, state)
	}
	m.last = m.metrics.Complete()

	return root.bestMove()
}

func (m *MCTS) LastMetric() metrics.SearchMetric {
	return m.last
}

func (m *MCTS) iterate(root *decision, state game.Position) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, state)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision, state game.Position) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *decision, state game.Position) {
	node, state := selectThenExpand(root, state)
	winner := rollout(state, m.cutoff, m.evaluate, m.metrics)
	backup(node, winner)
}

func selectThenExpand(root *decision, state game.Position) (*decision, game.Position) {
	node := root
	for {
		child, childState, added := node.selectOrExpand(state)
		if added || child == node {
			return child, childState
		}
		node, state = child, childState
	}
}

// rollout plays random moves until the game ends or cutoff moves were made
// (cutoff 0 means no limit). At a cutoff the side the evaluation favours is
// taken as the winner.
func rollout(state game.Position, cutoff int, evaluate game.Evaluate, collector metrics.Collector) game.Player {
	depth := 0
	moves := state.LegalMoves()
	for len(moves) > 0 && (cutoff == 0 || depth < cutoff) {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		collector.AddFullPlayout()
		return state.Winner()
	}

	player := state.Player()
	switch score := evaluate(player, &state.Board); {
	case score > 0:
		return player
	case score < 0:
		return game.Opponent(player)
	}
	return game.Empty
}

func backup(newNode *decision, winner game.Player) {
	node := newNode
	for node != nil {
		node = node.backup(winner)
	}
}
