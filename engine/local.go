package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine referees a game between two strategies in the same process.
type Engine struct {
	black          searcher.Strategy
	white          searcher.Strategy
	startingPlayer game.Player
}

type Option func(e *Engine)

func WithStartingPlayer(player game.Player) Option {
	return func(e *Engine) {
		e.startingPlayer = player
	}
}

func LocalEngine(black, white searcher.Strategy, options ...Option) *Engine {
	if black == nil || white == nil {
		panic("need a strategy for both players")
	}

	e := &Engine{
		black:          black,
		white:          white,
		startingPlayer: game.Black,
	}
	for _, option := range options {
		option(e)
	}
	if e.startingPlayer != game.Black && e.startingPlayer != game.White {
		panic("starting player must be Black or White")
	}
	return e
}

func (e *Engine) strategy(player game.Player) searcher.Strategy {
	if player == game.Black {
		return e.black
	}
	return e.white
}

// Run plays the game until neither player can move. Each strategy works on a
// copy of the board; a move that is off the board or not legal ends the game
// with an IllegalMoveError.
func (e *Engine) Run() (Result, error) {
	board := game.InitialBoard()
	player := e.startingPlayer
	startTime := time.Now()

	log.Debug().Msgf("%s is starting", player)

	var moveMetrics []metrics.MoveMetric
	for step := 1; player != game.Empty; step++ {
		strategy := e.strategy(player)

		copied := board.Copy()
		start := time.Now()
		move := strategy.FindMove(player, copied)
		elapsed := time.Since(start)

		if !game.IsValid(move) || !board.IsLegal(move, player) {
			return Result{}, &IllegalMoveError{Player: player, Move: move, Board: *copied}
		}
		board.MakeMove(move, player)

		searchMetric := metrics.SearchMetric{}
		if metered, ok := strategy.(searcher.Metered); ok {
			searchMetric = metered.LastMetric()
		}
		searchMetric.Duration = elapsed
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.Name(),
			Square:       int(move),
			SearchMetric: searchMetric,
		})

		log.Debug().Msgf("step %d: %s played %d in %v", step, player, move, elapsed)

		player = game.NextPlayer(board, player)
	}

	endTime := time.Now()
	score := game.Score(game.Black, board)
	winner := game.Empty
	if score > 0 {
		winner = game.Black
	} else if score < 0 {
		winner = game.White
	}

	log.Debug().Msgf("game over after %d moves, winner: %s, score: %d", len(moveMetrics), winner, score)

	return Result{
		Board:  *board,
		Score:  score,
		Winner: winner,
		GameMetric: metrics.GameMetric{
			StartingPlayer: e.startingPlayer.Name(),
			Winner:         winner.Name(),
			Score:          score,
			StartTime:      startTime,
			EndTime:        endTime,
			Duration:       endTime.Sub(startTime),
			TotalMoves:     len(moveMetrics),
		},
		MoveMetrics: moveMetrics,
	}, nil
}
