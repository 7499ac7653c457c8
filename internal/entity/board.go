package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const Size = 3

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's mark, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Move addresses a cell by row and column, both in [0, 2].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// WinLines lists every row, column and both diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid passed by value. Methods never modify the receiver,
// ApplyMove returns a fresh copy.
type Board [Size][Size]Mark

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

func (that Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

// Counts returns the number of X and O marks on the board.
func (that Board) Counts() (int, int) {
	var x, o int
	for row := range Size {
		for col := range Size {
			switch that[row][col] {
			case MarkX:
				x++
			case MarkO:
				o++
			}
		}
	}
	return x, o
}

// Validate checks the mark-count invariant of alternating play with X first.
func (that Board) Validate() error {
	x, o := that.Counts()
	if x != o && x != o+1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidState, x, o)
	}
	return nil
}

// CurrentPlayer - returns the mark to move next, or Empty if the game is over.
func (that Board) CurrentPlayer() Mark {
	if that.IsTerminal() {
		return Empty
	}

	if that == InitialState() {
		return MarkX
	}

	x, o := that.Counts()
	if x <= o {
		return MarkX
	}
	return MarkO
}

// LegalMoves - returns every empty cell in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// ApplyMove - places the current player's mark on the given cell of a copy of the board.
func (that Board) ApplyMove(move Move) (Board, error) {
	if !move.Valid() {
		return that, fmt.Errorf("%w: cell %s is out of the board", apperror.ErrInvalidMove, move)
	}

	if that.At(move) != Empty {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	if that.IsTerminal() {
		return that, apperror.ErrGameFinished
	}

	next := that
	next[move.Row][move.Col] = that.CurrentPlayer()

	return next, nil
}

func (that Board) hasLine(mark Mark) bool {
	for _, line := range WinLines {
		if that.At(line[0]) == mark && that.At(line[1]) == mark && that.At(line[2]) == mark {
			return true
		}
	}
	return false
}

// Winner - returns the mark owning a complete line or Empty.
// X is checked first, so a malformed board with two lines reports X.
func (that Board) Winner() Mark {
	switch {
	case that.hasLine(MarkX):
		return MarkX
	case that.hasLine(MarkO):
		return MarkO
	default:
		return Empty
	}
}

func (that Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

func (that Board) IsTerminal() bool {
	return that.Winner() != Empty || that.IsFull()
}

func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case MarkX:
		return XWins
	case MarkO:
		return OWins
	}

	if that.IsFull() {
		return Draw
	}
	return InProgress
}

// Score - returns the utility of a finished game: 1 if X won, -1 if O won, 0 for a draw.
func (that Board) Score() (int, error) {
	if !that.IsTerminal() {
		return 0, fmt.Errorf("%w: score of a game in progress", apperror.ErrInvalidState)
	}
	return that.Utility(), nil
}

// Utility is Score without the terminal check, for callers that already made it.
func (that Board) Utility() int {
	switch that.Winner() {
	case MarkX:
		return 1
	case MarkO:
		return -1
	default:
		return 0
	}
}
