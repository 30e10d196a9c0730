package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
	"sync"
)

// Minimax searches depth plies below board with the negamax formulation and
// returns the value of the position for player together with the move that
// achieves it. Ties go to the first move in scan order. A forced pass costs a
// ply like a real move. The move is game.NoMove at cutoffs, passes and
// finished games.
func Minimax(player game.Player, board *game.Board, depth int, evaluate game.Evaluate) (int, game.Square) {
	return minimax(player, board, depth, evaluate, metrics.NewDummyCollector())
}

func minimax(player game.Player, board *game.Board, depth int, evaluate game.Evaluate, collector metrics.Collector) (int, game.Square) {
	collector.AddNode()
	if depth == 0 {
		return evaluate(player, board), game.NoMove
	}

	opp := game.Opponent(player)
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		if !board.AnyLegalMove(opp) {
			return game.FinalValue(player, board), game.NoMove
		}
		value, _ := minimax(opp, board, depth-1, evaluate, collector)
		return -value, game.NoMove
	}

	bestValue, bestMove := math.MinInt, game.NoMove
	for _, move := range moves {
		child := board.Copy().MakeMove(move, player)
		value, _ := minimax(opp, child, depth-1, evaluate, collector)
		if -value > bestValue {
			bestValue, bestMove = -value, move
		}
	}
	return bestValue, bestMove
}

// parallelMinimax evaluates the root moves on a pool of goroutines, each on
// its own copy of the board, and picks the result exactly like minimax.
func parallelMinimax(player game.Player, board *game.Board, depth int, evaluate game.Evaluate, goroutines int, collector metrics.Collector) (int, game.Square) {
	moves := board.LegalMoves(player)
	if depth == 0 || len(moves) < 2 || goroutines < 2 {
		return minimax(player, board, depth, evaluate, collector)
	}
	collector.AddNode()

	opp := game.Opponent(player)
	values := make([]int, len(moves))
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				child := board.Copy().MakeMove(moves[i], player)
				value, _ := minimax(opp, child, depth-1, evaluate, collector)
				values[i] = -value
			}
		}()
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return values[best], moves[best]
}

type MinimaxSearcher struct {
	depth int
	settings
	last metrics.SearchMetric
}

// NewMinimax returns a strategy that plays the minimax move searched depth
// plies deep. Depth must be at least 1.
func NewMinimax(depth int, evaluate game.Evaluate, options ...Option) *MinimaxSearcher {
	if depth < 1 {
		panic("minimax depth must be at least 1")
	}
	s := &MinimaxSearcher{
		depth:    depth,
		settings: newSettings(append([]Option{WithEvaluationFn(evaluate)}, options...)),
	}
	return s
}

func (s *MinimaxSearcher) FindMove(player game.Player, board *game.Board) game.Square {
	s.metrics.Start()
	_, move := parallelMinimax(player, board, s.depth, s.evaluate, s.goroutines, s.metrics)
	s.last = s.metrics.Complete()
	return move
}

func (s *MinimaxSearcher) LastMetric() metrics.SearchMetric {
	return s.last
}
