package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	b := InitialBoard()
	require.Equal(t, 0, Score(Black, b))

	b.MakeMove(34, Black)
	require.Equal(t, 3, Score(Black, b))
	require.Equal(t, -3, Score(White, b))
	require.Equal(t, Score(Black, b), Simple(Black, b))
}

func TestWeighted(t *testing.T) {
	t.Run("initial board is balanced", func(t *testing.T) {
		require.Equal(t, 0, Weighted(Black, InitialBoard()))
	})

	t.Run("corner against x-square", func(t *testing.T) {
		b := emptyBoard()
		b[11] = Black
		b[22] = White
		require.Equal(t, 120+40, Weighted(Black, b))
		require.Equal(t, -160, Weighted(White, b))
	})

	t.Run("weights are symmetric", func(t *testing.T) {
		for _, sq := range Squares() {
			row, col := int(sq)/10, int(sq)%10
			mirrored := Square((9-row)*10 + col)
			transposed := Square(col*10 + row)
			require.Equal(t, Weight(sq), Weight(mirrored))
			require.Equal(t, Weight(sq), Weight(transposed))
		}
	})
}

func TestFinalValue(t *testing.T) {
	tests := []struct {
		name   string
		black  []Square
		white  []Square
		expect int
	}{
		{"win", []Square{11, 12}, []Square{88}, MaxValue},
		{"loss", []Square{11}, []Square{87, 88}, MinValue},
		{"tie", []Square{11}, []Square{88}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard()
			for _, sq := range tt.black {
				b[sq] = Black
			}
			for _, sq := range tt.white {
				b[sq] = White
			}
			require.Equal(t, tt.expect, FinalValue(Black, b))
			require.Equal(t, -tt.expect, FinalValue(White, b))
		})
	}
}

func TestValueBounds(t *testing.T) {
	total := 0
	for _, sq := range Squares() {
		total += max(Weight(sq), -Weight(sq))
	}
	require.Equal(t, 1176, total, "Weighted is bounded by the sum of absolute weights")
	require.Greater(t, MaxValue, Size*Size, "Simple never reaches a proven win")
	require.Equal(t, -MaxValue, MinValue)
}

func TestEvaluatorByName(t *testing.T) {
	_, ok := EvaluatorByName("weighted")
	require.True(t, ok)
	_, ok = EvaluatorByName("simple")
	require.True(t, ok)
	_, ok = EvaluatorByName("mobility")
	require.False(t, ok)
}
