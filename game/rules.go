package game

// FindBracket finds the square that, together with square, sandwiches a run of
// one or more opponent pieces in the given direction. It reports false when the
// neighbour is player's own piece or the run ends on an empty or outer cell.
func (b *Board) FindBracket(square Square, player Player, dir Direction) (Square, bool) {
	bracket := square + Square(dir)
	if b[bracket] == player {
		return NoMove, false
	}
	opp := Opponent(player)
	for b[bracket] == opp {
		bracket += Square(dir)
	}
	if b[bracket] != player {
		return NoMove, false
	}
	return bracket, true
}

// IsLegal reports whether player may place a piece on move.
func (b *Board) IsLegal(move Square, player Player) bool {
	if !IsValid(move) || b[move] != Empty {
		return false
	}
	for _, dir := range Directions {
		if _, ok := b.FindBracket(move, player, dir); ok {
			return true
		}
	}
	return false
}

// LegalMoves returns player's legal moves in row-major order.
func (b *Board) LegalMoves(player Player) []Square {
	var moves []Square
	for _, sq := range squares {
		if b.IsLegal(sq, player) {
			moves = append(moves, sq)
		}
	}
	return moves
}

func (b *Board) AnyLegalMove(player Player) bool {
	for _, sq := range squares {
		if b.IsLegal(sq, player) {
			return true
		}
	}
	return false
}

// MakeMove places player's piece on move and flips every bracketed run.
// Legality is the caller's concern: a direction without a bracket flips nothing.
func (b *Board) MakeMove(move Square, player Player) *Board {
	b[move] = player
	for _, dir := range Directions {
		b.makeFlips(move, player, dir)
	}
	return b
}

func (b *Board) makeFlips(move Square, player Player, dir Direction) {
	bracket, ok := b.FindBracket(move, player, dir)
	if !ok {
		return
	}
	for sq := move + Square(dir); sq != bracket; sq += Square(dir) {
		b[sq] = player
	}
}

// NextPlayer returns who moves after prev: the opponent if it has a legal move,
// prev again if only prev can move, and Empty when the game is over.
func NextPlayer(board *Board, prev Player) Player {
	opp := Opponent(prev)
	if board.AnyLegalMove(opp) {
		return opp
	}
	if board.AnyLegalMove(prev) {
		return prev
	}
	return Empty
}
