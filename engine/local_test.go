package engine

import (
	"errors"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// firstMove always plays the first legal move.
var firstMove = searcher.StrategyFunc(func(p game.Player, b *game.Board) game.Square {
	return b.LegalMoves(p)[0]
})

func TestLocalEngine(t *testing.T) {
	t.Run("panics without strategies", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(nil, firstMove)
		})
	})

	t.Run("panics on a bad starting player", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(firstMove, firstMove, WithStartingPlayer(game.Outer))
		})
	})
}

func TestRun(t *testing.T) {
	t.Run("plays a full game", func(t *testing.T) {
		e := LocalEngine(player.NewRandom(7), searcher.NewAlphaBeta(2, game.Weighted, searcher.WithMetrics()))

		result, err := e.Run()

		require.NoError(t, err)
		require.False(t, result.Board.AnyLegalMove(game.Black))
		require.False(t, result.Board.AnyLegalMove(game.White))
		require.Equal(t, game.Score(game.Black, &result.Board), result.Score)
		require.Equal(t, len(result.MoveMetrics), result.GameMetric.TotalMoves)
		require.Equal(t, "Black", result.GameMetric.StartingPlayer)
		require.Equal(t, result.Winner.Name(), result.GameMetric.Winner)
		require.LessOrEqual(t, result.GameMetric.TotalMoves, 60)
		require.Equal(t, "Black", result.MoveMetrics[0].Player)

		for i, mm := range result.MoveMetrics {
			require.Equal(t, i+1, mm.Step)
			if mm.Player == "White" {
				require.Positive(t, mm.Nodes, "Alpha-beta should report its nodes")
			} else {
				require.Zero(t, mm.Nodes)
			}
		}
	})

	t.Run("winner follows the score", func(t *testing.T) {
		result, err := LocalEngine(player.Greedy{}, firstMove).Run()
		require.NoError(t, err)

		switch {
		case result.Score > 0:
			require.Equal(t, game.Black, result.Winner)
		case result.Score < 0:
			require.Equal(t, game.White, result.Winner)
		default:
			require.Equal(t, game.Empty, result.Winner)
		}
	})

	t.Run("same strategies same game", func(t *testing.T) {
		first, err := LocalEngine(player.Greedy{}, firstMove).Run()
		require.NoError(t, err)
		second, err := LocalEngine(player.Greedy{}, firstMove).Run()
		require.NoError(t, err)
		require.Equal(t, first.Board, second.Board)
	})

	t.Run("white can start", func(t *testing.T) {
		result, err := LocalEngine(firstMove, firstMove, WithStartingPlayer(game.White)).Run()
		require.NoError(t, err)
		require.Equal(t, "White", result.GameMetric.StartingPlayer)
		require.Equal(t, "White", result.MoveMetrics[0].Player)
		require.Equal(t, 35, result.MoveMetrics[0].Square)
	})

	t.Run("illegal move", func(t *testing.T) {
		cheat := searcher.StrategyFunc(func(game.Player, *game.Board) game.Square {
			return 11
		})

		_, err := LocalEngine(firstMove, cheat).Run()

		var illegal *IllegalMoveError
		require.True(t, errors.As(err, &illegal))
		require.Equal(t, game.White, illegal.Player)
		require.Equal(t, game.Square(11), illegal.Move)
		require.EqualError(t, err, "White cannot move to square 11")
	})

	t.Run("off the board", func(t *testing.T) {
		_, err := LocalEngine(searcher.StrategyFunc(func(game.Player, *game.Board) game.Square {
			return game.NoMove
		}), firstMove).Run()
		require.EqualError(t, err, "Black cannot move to square -1")
	})

	t.Run("strategies only see a copy", func(t *testing.T) {
		vandal := searcher.StrategyFunc(func(p game.Player, b *game.Board) game.Square {
			move := b.LegalMoves(p)[0]
			for _, sq := range game.Squares() {
				b[sq] = game.Outer
			}
			return move
		})

		result, err := LocalEngine(vandal, firstMove).Run()

		require.NoError(t, err)
		require.Zero(t, result.Board.Count(game.Outer))
		require.Equal(t, 64, result.Board.Count(game.Black)+result.Board.Count(game.White)+result.Board.Count(game.Empty))
	})
}

func TestMeanMoveTime(t *testing.T) {
	result, err := LocalEngine(firstMove, firstMove).Run()
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.MeanMoveTime(game.Black), time.Duration(0))
	require.Zero(t, Result{}.MeanMoveTime(game.White))
}
