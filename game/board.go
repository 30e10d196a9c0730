package game

import (
	"fmt"
	"strings"
)

const (
	Size   = 8        // Playable rows and columns
	stride = Size + 2 // Row width including the border columns
	cells  = stride * stride
)

// Board is a 10x10 grid of pieces stored row by row. Rows and columns 0 and 9
// are always Outer so that direction scans stop without bounds checks.
type Board [cells]Piece

var squares = func() []Square {
	sq := make([]Square, 0, Size*Size)
	for i := Square(stride + 1); i < Square(cells-stride-1); i++ {
		if col := i % stride; col >= 1 && col <= Size {
			sq = append(sq, i)
		}
	}
	return sq
}()

// Squares returns the 64 playable squares in row-major order.
func Squares() []Square {
	out := make([]Square, len(squares))
	copy(out, squares)
	return out
}

// IsValid reports whether square lies on the playable 8x8 region.
func IsValid(square Square) bool {
	if square < 0 || square >= cells {
		return false
	}
	row, col := square/stride, square%stride
	return row >= 1 && row <= Size && col >= 1 && col <= Size
}

// InitialBoard returns the standard starting position.
func InitialBoard() *Board {
	b := &Board{}
	for i := range b {
		b[i] = Outer
	}
	for _, sq := range squares {
		b[sq] = Empty
	}
	b[44], b[45] = White, Black
	b[54], b[55] = Black, White
	return b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// Count returns the number of playable squares holding piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, sq := range squares {
		if b[sq] == piece {
			n++
		}
	}
	return n
}

func (b *Board) String() string {
	return b.Render(Empty)
}

// Render draws the board with row and column headers. Legal moves of
// showLegal are marked with '#'; pass Empty to draw the board as is.
func (b *Board) Render(showLegal Player) string {
	marked := map[Square]bool{}
	if showLegal == Black || showLegal == White {
		for _, move := range b.LegalMoves(showLegal) {
			marked[move] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(" ")
	for col := 1; col <= Size; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")
	for row := 1; row <= Size; row++ {
		fmt.Fprintf(&sb, "%d", row)
		for col := 1; col <= Size; col++ {
			sq := Square(row*stride + col)
			symbol := b[sq].Symbol()
			if marked[sq] {
				symbol = "#"
			}
			sb.WriteString(" " + symbol)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
