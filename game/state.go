package game

// Position is a board together with the player to move. ToMove is Empty once
// neither player can move. Positions are values: Play never touches the
// receiver's board.
type Position struct {
	Board  Board
	ToMove Player
}

func NewPosition() Position {
	return Position{Board: *InitialBoard(), ToMove: Black}
}

// Player returns the player to move.
func (p Position) Player() Player {
	return p.ToMove
}

func (p Position) IsOver() bool {
	return p.ToMove == Empty
}

// LegalMoves returns the legal moves of the player to move, nil when the game is over.
func (p Position) LegalMoves() []Square {
	if p.IsOver() {
		return nil
	}
	return p.Board.LegalMoves(p.ToMove)
}

// Play applies move for the player to move and resolves who moves next,
// skipping a player that has to pass.
func (p Position) Play(move Square) Position {
	next := p
	next.Board.MakeMove(move, p.ToMove)
	next.ToMove = NextPlayer(&next.Board, p.ToMove)
	return next
}

// Winner returns the player with more discs, or Empty on a tie. It is only
// meaningful once the game is over.
func (p Position) Winner() Player {
	diff := Score(Black, &p.Board)
	switch {
	case diff > 0:
		return Black
	case diff < 0:
		return White
	}
	return Empty
}
