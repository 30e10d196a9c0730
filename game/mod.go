package game

// Piece is the content of a single board cell.
type Piece int8

const (
	Empty Piece = iota
	Black
	White
	Outer // Sentinel ring around the playable 8x8 region
)

// Player is the side to move. Only Black and White are meaningful players,
// Empty is used where "nobody" is needed (game over, tie).
type Player = Piece

// Square is an index into the flat 10x10 board.
type Square int

// NoMove is returned by searches that end without choosing a square
// (leaf cutoffs, passes and terminal positions).
const NoMove Square = -1

// Direction is an offset in the flat board index space.
type Direction int

const (
	Up        Direction = -10
	Down      Direction = 10
	Left      Direction = -1
	Right     Direction = 1
	UpRight   Direction = -9
	DownRight Direction = 11
	DownLeft  Direction = 9
	UpLeft    Direction = -11
)

// Directions lists the 8 scan directions clockwise starting from Up.
var Directions = [8]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// Proven win and loss. Simple never reaches them; Weighted could in theory,
// since the weights add up to 1176 in absolute value.
const (
	MaxValue = 999
	MinValue = -999
)

// Evaluates the board from player's perspective, higher is better for player.
type Evaluate func(player Player, board *Board) int

var pieceSymbols = [...]string{Empty: ".", Black: "@", White: "o", Outer: "?"}

var playerNames = map[Player]string{Black: "Black", White: "White"}

func (p Piece) Symbol() string {
	if p < Empty || p > Outer {
		return "?"
	}
	return pieceSymbols[p]
}

// Name returns "Black" or "White", and "Nobody" for any other piece.
func (p Piece) Name() string {
	if name, ok := playerNames[p]; ok {
		return name
	}
	return "Nobody"
}

func (p Piece) String() string {
	return p.Name()
}

// Opponent returns Black for White and White for anything else.
func Opponent(player Player) Player {
	if player == White {
		return Black
	}
	return White
}
