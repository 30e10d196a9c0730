package engine

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"time"
)

// Result is the outcome of a finished game.
type Result struct {
	Board       game.Board
	Score       int         // Black's disc differential
	Winner      game.Player // Empty on a tie
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// MeanMoveTime returns how long player took per move on average.
func (r Result) MeanMoveTime(player game.Player) time.Duration {
	var total time.Duration
	count := 0
	for _, mm := range r.MoveMetrics {
		if mm.Player == player.Name() {
			total += mm.Duration
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}

// IllegalMoveError is returned when a strategy picks a square that is off the
// board or does not capture. Board is the copy the strategy was given.
type IllegalMoveError struct {
	Player game.Player
	Move   game.Square
	Board  game.Board
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s cannot move to square %d", e.Player.Name(), e.Move)
}
