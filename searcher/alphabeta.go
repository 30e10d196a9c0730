package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// AlphaBeta is Minimax with a window [alpha, beta] of proven bounds. Children
// are searched with the negated window [-beta, -alpha] and the scan stops once
// the window is empty. The best move starts as the first legal move and is
// only replaced by a move that raises alpha strictly. The returned value is
// alpha, which equals the minimax value whenever that lies inside the window.
func AlphaBeta(player game.Player, board *game.Board, alpha, beta, depth int, evaluate game.Evaluate) (int, game.Square) {
	return alphaBeta(player, board, alpha, beta, depth, evaluate, metrics.NewDummyCollector())
}

func alphaBeta(player game.Player, board *game.Board, alpha, beta, depth int, evaluate game.Evaluate, collector metrics.Collector) (int, game.Square) {
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
		value, _ := alphaBeta(opp, board, -beta, -alpha, depth-1, evaluate, collector)
		return -value, game.NoMove
	}

	bestMove := moves[0]
	for _, move := range moves {
		if alpha >= beta {
			break
		}
		child := board.Copy().MakeMove(move, player)
		value, _ := alphaBeta(opp, child, -beta, -alpha, depth-1, evaluate, collector)
		if -value > alpha {
			alpha, bestMove = -value, move
		}
	}
	return alpha, bestMove
}

type AlphaBetaSearcher struct {
	depth int
	settings
	last metrics.SearchMetric
}

// NewAlphaBeta returns a strategy that searches depth plies with alpha-beta
// pruning inside the window [game.MinValue, game.MaxValue].
func NewAlphaBeta(depth int, evaluate game.Evaluate, options ...Option) *AlphaBetaSearcher {
	if depth < 1 {
		panic("alpha-beta depth must be at least 1")
	}
	return &AlphaBetaSearcher{
		depth:    depth,
		settings: newSettings(append([]Option{WithEvaluationFn(evaluate)}, options...)),
	}
}

func (s *AlphaBetaSearcher) FindMove(player game.Player, board *game.Board) game.Square {
	s.metrics.Start()
	_, move := alphaBeta(player, board, game.MinValue, game.MaxValue, s.depth, s.evaluate, s.metrics)
	s.last = s.metrics.Complete()
	return move
}

func (s *AlphaBetaSearcher) LastMetric() metrics.SearchMetric {
	return s.last
}
