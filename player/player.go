package player

import (
	"bufio"
	"fmt"
	"io"
	"othello/game"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom seeds the generator with seed, or with the clock when seed is 0.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(player game.Player, board *game.Board) game.Square {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[r.rng.Intn(len(moves))]
}

// Greedy plays the move that leaves it with the best disc differential.
type Greedy struct{}

func (Greedy) FindMove(player game.Player, board *game.Board) game.Square {
	best := game.NoMove
	bestScore := 0
	for _, move := range board.LegalMoves(player) {
		score := game.Score(player, board.Copy().MakeMove(move, player))
		if best == game.NoMove || score > bestScore {
			best, bestScore = move, score
		}
	}
	return best
}

// Human asks for moves on out and reads them from in, one square per line.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHuman reads moves from in. Humans built on the same reader share one
// scanner, so two of them can take turns on a single input stream.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: sharedScanner(in), out: out}
}

var scanners = struct {
	sync.Mutex
	byReader map[io.Reader]*bufio.Scanner
}{byReader: map[io.Reader]*bufio.Scanner{}}

// sharedScanner returns the scanner reading from in, creating it on first use.
// A scanner buffers ahead of the line it returns, so there must be only one
// per reader. Readers that cannot be map keys get a scanner of their own.
func sharedScanner(in io.Reader) *bufio.Scanner {
	if !reflect.TypeOf(in).Comparable() {
		return bufio.NewScanner(in)
	}

	scanners.Lock()
	defer scanners.Unlock()

	scanner, ok := scanners.byReader[in]
	if !ok {
		scanner = bufio.NewScanner(in)
		scanners.byReader[in] = scanner
	}
	return scanner
}

// FindMove prompts until a legal square is entered. It returns NoMove once
// the input is exhausted.
func (h *Human) FindMove(player game.Player, board *game.Board) game.Square {
	fmt.Fprint(h.out, board.Render(player))
	for {
		fmt.Fprintf(h.out, "%s (%s) move? > ", player, player.Symbol())
		if !h.in.Scan() {
			return game.NoMove
		}

		text := strings.TrimSpace(h.in.Text())
		n, err := strconv.Atoi(text)
		if err == nil && board.IsLegal(game.Square(n), player) {
			return game.Square(n)
		}
		fmt.Fprintf(h.out, "%q is not a legal move\n", text)
	}
}
