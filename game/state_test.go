package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		p := NewPosition()
		require.Equal(t, Black, p.Player())
		require.False(t, p.IsOver())
		require.Equal(t, []Square{34, 43, 56, 65}, p.LegalMoves())
	})

	t.Run("play does not modify the receiver", func(t *testing.T) {
		p := NewPosition()
		next := p.Play(34)

		require.Equal(t, White, next.Player())
		require.Equal(t, Black, next.Board[44])
		require.Equal(t, White, p.Board[44])
		require.Equal(t, Empty, p.Board[34])
	})

	t.Run("pass is resolved by play", func(t *testing.T) {
		b := emptyBoard()
		b[11], b[12] = White, Black
		b[88], b[87] = White, Black
		p := Position{Board: *b, ToMove: White}

		next := p.Play(13)
		require.Equal(t, White, next.Player(), "Black has no move and passes")
	})

	t.Run("game over", func(t *testing.T) {
		b := emptyBoard()
		b[11], b[12] = White, Black
		p := Position{Board: *b, ToMove: White}

		over := p.Play(13)
		require.True(t, over.IsOver())
		require.Nil(t, over.LegalMoves())
		require.Equal(t, White, over.Winner())
	})
}
