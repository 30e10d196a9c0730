package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphaBeta(t *testing.T) {
	t.Run("depth 1 weighted opening", func(t *testing.T) {
		value, move := AlphaBeta(game.Black, game.InitialBoard(), game.MinValue, game.MaxValue, 1, game.Weighted)
		require.Equal(t, 9, value)
		require.Equal(t, game.Square(34), move, "First of the equally weighted openings")
	})

	t.Run("same value as minimax", func(t *testing.T) {
		boards := map[string]*game.Board{
			"initial": game.InitialBoard(),
			"midgame": midgame(),
		}
		for name, b := range boards {
			for _, player := range []game.Player{game.Black, game.White} {
				for depth := 1; depth <= 4; depth++ {
					for _, evaluate := range []game.Evaluate{game.Simple, game.Weighted} {
						expected, _ := Minimax(player, b, depth, evaluate)
						got, _ := AlphaBeta(player, b, game.MinValue, game.MaxValue, depth, evaluate)
						require.Equal(t, expected, got, "%s %s depth %d", name, player, depth)
					}
				}
			}
		}
	})

	t.Run("prunes", func(t *testing.T) {
		b := midgame()
		full := metrics.NewCollector()
		pruned := metrics.NewCollector()
		full.Start()
		pruned.Start()

		minimax(game.Black, b, 4, game.Weighted, full)
		alphaBeta(game.Black, b, game.MinValue, game.MaxValue, 4, game.Weighted, pruned)

		require.Less(t, pruned.Complete().Nodes, full.Complete().Nodes)
	})

	t.Run("empty window returns alpha and the first move", func(t *testing.T) {
		value, move := AlphaBeta(game.Black, game.InitialBoard(), 5, 5, 2, game.Weighted)
		require.Equal(t, 5, value)
		require.Equal(t, game.Square(34), move)
	})

	t.Run("terminal and pass handling mirror minimax", func(t *testing.T) {
		b := emptyBoard()
		b[44] = game.Black
		value, move := AlphaBeta(game.Black, b, game.MinValue, game.MaxValue, 3, game.Simple)
		require.Equal(t, game.MaxValue, value)
		require.Equal(t, game.NoMove, move)

		b = emptyBoard()
		b[11], b[12] = game.White, game.Black
		value, move = AlphaBeta(game.Black, b, game.MinValue, game.MaxValue, 2, game.Simple)
		require.Equal(t, -3, value)
		require.Equal(t, game.NoMove, move)
	})
}

func TestAlphaBetaSearcher(t *testing.T) {
	t.Run("panics on non-positive depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewAlphaBeta(-1, game.Weighted)
		})
	})

	t.Run("depth 1 weighted opening", func(t *testing.T) {
		s := NewAlphaBeta(1, game.Weighted)
		require.Equal(t, game.Square(34), s.FindMove(game.Black, game.InitialBoard()))
	})

	t.Run("same move as minimax", func(t *testing.T) {
		b := midgame()
		for depth := 1; depth <= 4; depth++ {
			expected := NewMinimax(depth, game.Weighted).FindMove(game.Black, b)
			got := NewAlphaBeta(depth, game.Weighted).FindMove(game.Black, b)
			require.Equal(t, expected, got, "depth %d", depth)
		}
	})

	t.Run("returns a legal move and leaves the board alone", func(t *testing.T) {
		b := midgame()
		before := *b
		s := NewAlphaBeta(4, game.Weighted, WithMetrics())
		move := s.FindMove(game.White, b)

		require.True(t, b.IsLegal(move, game.White))
		require.Equal(t, before, *b)
		require.Positive(t, s.LastMetric().Nodes)
	})
}
