package game

// Positional weight of every cell, parallel to the board layout. Corners are
// worth the most, the cells touching them are the most dangerous to own.
var squareWeights = [cells]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Weight returns the positional weight of square.
func Weight(square Square) int {
	return squareWeights[square]
}

// Score returns player's disc count minus the opponent's.
func Score(player Player, board *Board) int {
	mine, theirs := 0, 0
	opp := Opponent(player)
	for _, sq := range squares {
		switch board[sq] {
		case player:
			mine++
		case opp:
			theirs++
		}
	}
	return mine - theirs
}

// Simple evaluates a board by its disc differential.
func Simple(player Player, board *Board) int {
	return Score(player, board)
}

// Weighted sums the square weights of player's discs minus those of the
// opponent's discs.
func Weighted(player Player, board *Board) int {
	opp := Opponent(player)
	total := 0
	for _, sq := range squares {
		switch board[sq] {
		case player:
			total += squareWeights[sq]
		case opp:
			total -= squareWeights[sq]
		}
	}
	return total
}

// FinalValue scores a finished game: MaxValue for a win, MinValue for a loss
// and the (zero) differential for a tie.
func FinalValue(player Player, board *Board) int {
	diff := Score(player, board)
	switch {
	case diff < 0:
		return MinValue
	case diff > 0:
		return MaxValue
	}
	return diff
}

var evaluators = map[string]Evaluate{
	"simple":   Simple,
	"weighted": Weighted,
}

// EvaluatorByName looks up an evaluator by its config name.
func EvaluatorByName(name string) (Evaluate, bool) {
	evaluate, ok := evaluators[name]
	return evaluate, ok
}
